package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoCardOnTop      = errors.New("no card on top")
	ErrNothingToRewind  = errors.New("nothing to rewind")
	ErrInvalidCount     = errors.New("invalid count")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrBadCredentials   = errors.New("wrong username or password")
)

// ValidationError represents a validation failure with details.
// Err, when set, is the sentinel the failure corresponds to.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CountError reports a count outside the accepted range
type CountError struct {
	Field string
	Value int
	Max   int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s must be between 1 and %d, got %d", e.Field, e.Max, e.Value)
}

func (e *CountError) Is(target error) bool {
	return target == ErrInvalidCount
}

// OperationError wraps a failure of a named deck operation
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
