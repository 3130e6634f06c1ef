package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every [ValidationError].
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameLength       = errors.New("length must be within the allowed range")
	ErrUsernamePattern  = errors.New("may only contain word characters, dashes and spaces")
	ErrPasswordLength   = errors.New("password length is out of range")
	ErrTimedeltaRange   = errors.New("timedelta is out of range")
	ErrInvalidFileName  = errors.New("invalid file name")
	ErrNegativeFlags    = errors.New("flags must be a non-negative bitmask")
	ErrNullNotAllowed   = errors.New("cannot be null")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptySet         = errors.New("at least one entry must be provided")
)

// ValidationError reports the field that failed and why.
type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Reason}
}

func fieldError(field string, reason error) error {
	return &ValidationError{Field: field, Reason: reason}
}
