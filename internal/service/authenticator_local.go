package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/crypto"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/models"
)

// localAuthenticator checks Basic credentials against the password hashes
// kept in the users table.
type localAuthenticator struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
}

func NewLocalAuthenticator(users store.UserRepository, hasher crypto.PasswordHasher) Authenticator {
	return &localAuthenticator{users: users, hasher: hasher}
}

// Authenticate returns the principal of creds. An unknown username and a
// wrong password are both [ErrUnauthorized].
func (a *localAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (models.AuthUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("username", creds.Username).Msg("unknown user")
		return models.AuthUser{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.AuthUser{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.PasswordHash == "" {
		return models.AuthUser{}, ErrUnauthorized
	}

	ok, err := a.hasher.Verify(ctx, creds.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("password verification failed")
		return models.AuthUser{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.AuthUser{}, ErrUnauthorized
	}

	return user.ToAuthUser(), nil
}
