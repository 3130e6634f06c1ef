package service

import "github.com/MKhiriev/go-message-keeper/models"

// RequireFlags passes when principal is an admin or holds every bit of at
// least one of the required options.
func RequireFlags(principal models.AuthUser, required ...models.UserFlags) error {
	if principal.Flags.HasAny(required...) {
		return nil
	}
	return ErrMissingPermissions
}
