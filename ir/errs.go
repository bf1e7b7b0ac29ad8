package ir

import (
	"errors"
	"fmt"
)

var (
	ErrCoercion = errors.New("coercion")
	ErrNoChild  = errors.New("no such child")
)

// CoercionError describes a coercion which fell back to a default
// value. It is only ever logged.
type CoercionError struct {
	From, To Kind
	Text     string
	Err      error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: %s %q to %s: %v", ErrCoercion, e.From, e.Text, e.To, e.Err)
}

func (e *CoercionError) Unwrap() []error {
	return []error{ErrCoercion, e.Err}
}
