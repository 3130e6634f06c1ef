package crypto

import "errors"

var (
	ErrInvalidHash         = errors.New("invalid password hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrGeneratingSalt      = errors.New("failed to generate salt")
)
