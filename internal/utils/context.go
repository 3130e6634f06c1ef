// Package utils provides helpers shared by the handlers, services and the
// auth adapter: typed context keys for the request principal, JSON response
// writing, the resty HTTP client, link token and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// PrincipalCtxKey stores the authenticated [models.AuthUser].
	PrincipalCtxKey = contextKey("principal")

	// CredentialsCtxKey stores the Basic credentials the principal was
	// authenticated with. Remote user operations forward them upstream.
	CredentialsCtxKey = contextKey("credentials")

	// MessageLinkCtxKey stores the [models.MessageLink] a public request was
	// authenticated with.
	MessageLinkCtxKey = contextKey("messageLink")
)

// WithPrincipal returns a copy of ctx carrying the principal and the
// credentials it was authenticated with.
func WithPrincipal(ctx context.Context, principal models.AuthUser, creds models.Credentials) context.Context {
	ctx = context.WithValue(ctx, PrincipalCtxKey, principal)
	return context.WithValue(ctx, CredentialsCtxKey, creds)
}

// GetPrincipalFromContext retrieves the authenticated user.
//
// Example usage:
//
//	principal, ok := utils.GetPrincipalFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetPrincipalFromContext(ctx context.Context) (models.AuthUser, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.AuthUser)
	return principal, ok
}

func GetCredentialsFromContext(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(CredentialsCtxKey).(models.Credentials)
	return creds, ok
}

func WithMessageLink(ctx context.Context, link models.MessageLink) context.Context {
	return context.WithValue(ctx, MessageLinkCtxKey, link)
}

func GetMessageLinkFromContext(ctx context.Context) (models.MessageLink, bool) {
	link, ok := ctx.Value(MessageLinkCtxKey).(models.MessageLink)
	return link, ok
}
