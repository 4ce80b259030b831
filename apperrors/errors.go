// Package apperrors defines the error kinds the domain services surface to
// their callers. Boundary layers match on them with errors.Is and translate
// to transport status codes.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup miss (user id, username, or role id).
	ErrNotFound = errors.New("resource not found")

	// ErrConflict marks a uniqueness violation (duplicate username or role name).
	ErrConflict = errors.New("resource conflict")
)

// NotFoundf wraps ErrNotFound with a message identifying what was missing.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf wraps ErrConflict with a message identifying the colliding value.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is, or wraps, ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
