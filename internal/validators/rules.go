package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

const (
	MinimumNameLength     = 3
	MaximumNameLength     = 32
	MinimumPasswordLength = 8
	MaximumPasswordLength = 120
	MaximumFileNameLength = 120

	MinimumTimedelta = 60 * time.Second
	MaximumTimedelta = 3650 * 24 * time.Hour
)

// usernameRegex is the Unicode-aware form of ^[\w\-\s]+$.
var usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}\p{M}_\-\s]+$`)

func checkLength(field, value string, minimum, maximum int) error {
	if n := utf8.RuneCountInString(value); n < minimum || n > maximum {
		return fieldError(field, fmt.Errorf("%w (%d..%d, got %d)", ErrNameLength, minimum, maximum, n))
	}
	return nil
}

// ValidateUsername checks length and allowed characters.
func ValidateUsername(username string) error {
	if err := checkLength(FieldUsername, username, MinimumNameLength, MaximumNameLength); err != nil {
		return err
	}
	if !usernameRegex.MatchString(username) {
		return fieldError(FieldUsername, ErrUsernamePattern)
	}
	return nil
}

func ValidatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < MinimumPasswordLength || n > MaximumPasswordLength {
		return fieldError(FieldPassword, fmt.Errorf("%w (%d..%d)", ErrPasswordLength, MinimumPasswordLength, MaximumPasswordLength))
	}
	return nil
}

func ValidateDeviceName(name string) error {
	return checkLength(FieldName, name, MinimumNameLength, MaximumNameLength)
}

// ValidateTimedelta checks that d lies within [MinimumTimedelta, MaximumTimedelta].
func ValidateTimedelta(field string, d time.Duration) error {
	if d < MinimumTimedelta || d > MaximumTimedelta {
		return fieldError(field, fmt.Errorf("%w (%s..%s)", ErrTimedeltaRange, MinimumTimedelta, MaximumTimedelta))
	}
	return nil
}

// ValidateFileName rejects names that could escape a storage directory.
func ValidateFileName(name string) error {
	if err := checkLength(FieldFileName, name, 1, MaximumFileNameLength); err != nil {
		return err
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fieldError(FieldFileName, ErrInvalidFileName)
	}
	return nil
}

func ValidateFlags(flags models.UserFlags) error {
	if flags < 0 {
		return fieldError(FieldFlags, ErrNegativeFlags)
	}
	return nil
}

// ValidateDeviceNames checks the body of a bulk device deletion.
func ValidateDeviceNames(names []string) error {
	if len(names) == 0 {
		return fieldError(FieldDeviceNames, ErrEmptySet)
	}
	for _, name := range names {
		if err := checkLength(FieldDeviceNames, name, MinimumNameLength, MaximumNameLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMessageIDs checks the body of a bulk message deletion.
func ValidateMessageIDs(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return fieldError(FieldMessageIDs, ErrEmptySet)
	}
	return nil
}
