package amp

import (
	"errors"
	"fmt"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/modarith"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/textbookrsa"
)

var (
	// ErrInvalidConfig indicates a Config that failed validation.
	ErrInvalidConfig = errors.New("amp: invalid config")

	// ErrInverseUndefined is modarith.ErrInverseUndefined.
	ErrInverseUndefined = modarith.ErrInverseUndefined

	// ErrMessageTooLarge is textbookrsa.ErrMessageTooLarge.
	ErrMessageTooLarge = textbookrsa.ErrMessageTooLarge
)

// Error wraps an underlying error with the Engine operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("amp.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
