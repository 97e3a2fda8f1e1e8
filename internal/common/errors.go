package common

import (
	"errors"
	"fmt"
)

// Domain errors - use errors.Is() to check
var (
	ErrInternal     = errors.New("internal error")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrValidation   = errors.New("validation error")
	ErrUpstream     = errors.New("upstream error")
	ErrNotCompleted = errors.New("analysis not completed")

	ErrAnalysisNotFound = fmt.Errorf("analysis %w", ErrNotFound)
)

// WrapUpstream marks an error as a terminal upstream failure with context.
func WrapUpstream(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, errors.Join(ErrUpstream, err))
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUpstream checks if error is a terminal upstream failure
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsNotCompleted checks if error reports a non-terminal analysis
func IsNotCompleted(err error) bool {
	return errors.Is(err, ErrNotCompleted)
}

// IsValidation checks if error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
