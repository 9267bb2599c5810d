package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrAlreadyCompleted is returned when a result is submitted twice without the revise flag.
	ErrAlreadyCompleted = fmt.Errorf("%w: match already completed", ErrConflict)
)
