package entity

import (
	"errors"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidImage     = errors.New("invalid image")
	ErrUpload           = errors.New("image upload failed")
	ErrRemote           = errors.New("record store request failed")
	ErrImmutableKey     = errors.New("record key is immutable")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNothingToDelete  = errors.New("delete was not requested")
	ErrSubmitInProgress = errors.New("submit already in progress")
	ErrNoCategoryCode   = errors.New("entity has no category driven code")
)

// ValidationError lists every violated rule of one submit attempt.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
