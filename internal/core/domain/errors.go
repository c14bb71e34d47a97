package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidReference   = errors.New("referenced resource does not exist")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrStudentIDTaken    = errors.New("student ID already exists")
	ErrNoAuthorAvailable = errors.New("no valid user found to own this record")
)

// ValidationError carries a human-readable reason for a 400 response
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid creates a validation error with a formatted reason
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// MissingFields creates a validation error naming the required fields
func MissingFields(fields []string) error {
	return &ValidationError{Reason: "Missing required fields: " + strings.Join(fields, ", ")}
}

// BadReference creates a foreign-key validation error for a named resource
func BadReference(resource string) error {
	return fmt.Errorf("%w: invalid %s ID", ErrInvalidReference, resource)
}
