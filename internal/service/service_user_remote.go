package service

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/adapter"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/models"
)

// remoteUserService proxies account management to the auth service with the
// credentials of the current request. Rows are owned by the auth service;
// both instances share the database.
type remoteUserService struct {
	auth adapter.AuthAdapter
}

func NewRemoteUserService(auth adapter.AuthAdapter) UserService {
	return &remoteUserService{auth: auth}
}

func (r *remoteUserService) CreateUser(ctx context.Context, principal models.AuthUser, username string, user models.ReceivedUser) (models.AuthUser, error) {
	if err := RequireFlags(principal, models.FlagCreateUser); err != nil {
		return models.AuthUser{}, err
	}
	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		return models.AuthUser{}, ErrUnauthorized
	}
	return r.auth.CreateUser(ctx, creds, username, user)
}

func (r *remoteUserService) UpdateUser(ctx context.Context, principal models.AuthUser, update models.UserUpdate) (models.AuthUser, error) {
	if update.IsEmpty() {
		return principal, nil
	}
	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		return models.AuthUser{}, ErrUnauthorized
	}
	return r.auth.UpdateUser(ctx, creds, update)
}

func (r *remoteUserService) DeleteUser(ctx context.Context, _ models.AuthUser) error {
	creds, ok := utils.GetCredentialsFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}
	return r.auth.DeleteUser(ctx, creds)
}
