// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote auth service when the server runs
// with remote authentication.
//
// The remote service speaks the same REST surface as this server, so one
// instance can authenticate for another. Non-2xx answers are returned as
// [*UpstreamError] values carrying the status, detail and WWW-Authenticate
// header, which the HTTP layer relays unchanged.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_adapter_mock.go -package=mock

// AuthAdapter is the client of the remote auth service.
type AuthAdapter interface {
	// GetCurrentUser resolves the credentials to a user (GET /users/@me).
	GetCurrentUser(ctx context.Context, creds models.Credentials) (models.AuthUser, error)

	// CreateUser creates username on behalf of creds (POST /users/{username}).
	CreateUser(ctx context.Context, creds models.Credentials, username string, user models.ReceivedUser) (models.AuthUser, error)

	// UpdateUser patches the user identified by creds (PATCH /users/@me).
	// An empty update returns [ErrEmptyUpdate] without a request.
	UpdateUser(ctx context.Context, creds models.Credentials, update models.UserUpdate) (models.AuthUser, error)

	// DeleteUser deletes the user identified by creds (DELETE /users/@me).
	DeleteUser(ctx context.Context, creds models.Credentials) error

	// GetMessageLink resolves a link token of a message
	// (GET /messages/{id}/links?link=).
	GetMessageLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error)
}
