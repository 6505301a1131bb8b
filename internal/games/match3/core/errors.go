package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks caller programming errors: out-of-bounds positions,
	// non-adjacent or self swaps, malformed board shapes.
	ErrInvalidRequest = errors.New("match3: invalid request")

	// ErrBusy is returned when a swap or shuffle is requested while a
	// resolution cycle is still in flight.
	ErrBusy = errors.New("match3: resolution in progress")
)

// InvalidRequestError describes which operation was misused and why.
// It matches ErrInvalidRequest under errors.Is.
type InvalidRequestError struct {
	Op     string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("match3: invalid request: %s: %s", e.Op, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidRequest).
func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func invalid(op, format string, args ...any) *InvalidRequestError {
	return &InvalidRequestError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
