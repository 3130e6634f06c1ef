package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
)

// AlreadyExistsError reports a unique constraint violation (SQLSTATE 23505).
type AlreadyExistsError struct {
	Constraint string
	Detail     string
	Err        error
}

func (e *AlreadyExistsError) Error() string {
	if e.Constraint == "" {
		return "entry already exists"
	}
	return fmt.Sprintf("entry already exists (%s)", e.Constraint)
}

func (e *AlreadyExistsError) Unwrap() error { return e.Err }

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// DataError reports any other integrity violation (class 23) or a data
// exception (class 22), such as a foreign key pointing nowhere or a value
// out of range.
type DataError struct {
	Code   string
	Detail string
	Err    error
}

func (e *DataError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid data (SQLSTATE %s)", e.Code)
	}
	return fmt.Sprintf("invalid data (SQLSTATE %s): %s", e.Code, e.Detail)
}

func (e *DataError) Unwrap() error { return e.Err }

func (e *DataError) Is(target error) bool { return target == ErrInvalidData }

// translateError converts PostgreSQL errors found anywhere in err's chain
// into [*AlreadyExistsError] or [*DataError]. Other errors are wrapped with
// fallback.
func translateError(err error, fallback error) error {
	if err == nil {
		return nil
	}

	pgErr := postgresError(err)
	if pgErr == nil {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return &AlreadyExistsError{Constraint: pgErr.ConstraintName, Detail: pgErr.Detail, Err: err}
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code), pgerrcode.IsDataException(pgErr.Code):
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return &DataError{Code: pgErr.Code, Detail: strings.TrimSpace(detail), Err: err}
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

// IsAlreadyExists reports whether err is a unique constraint violation.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
