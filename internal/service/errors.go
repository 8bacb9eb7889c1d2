package service

import (
	"errors"

	"github.com/google/uuid"
)

// Service error taxonomy. Handlers translate these to HTTP status codes;
// anything not matching a sentinel is an internal failure and maps to 500.
var (
	// ErrInvalidArgument marks malformed input or unrecognized enum values
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a reference to an absent entity
	ErrNotFound = errors.New("not found")
)

// validID reports whether id parses as a UUID. Entity ids are uuid-typed
// columns; a malformed id can never match a row, so lookups treat it as
// not-found instead of letting the store reject the cast.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
