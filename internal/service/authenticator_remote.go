package service

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/adapter"
	"github.com/MKhiriev/go-message-keeper/models"
)

// remoteAuthenticator forwards credentials to the auth service. Upstream
// errors are returned unchanged so their status and detail reach the
// client.
type remoteAuthenticator struct {
	auth adapter.AuthAdapter
}

func NewRemoteAuthenticator(auth adapter.AuthAdapter) Authenticator {
	return &remoteAuthenticator{auth: auth}
}

func (a *remoteAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (models.AuthUser, error) {
	return a.auth.GetCurrentUser(ctx, creds)
}
