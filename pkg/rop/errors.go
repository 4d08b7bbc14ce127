package rop

import (
	"errors"
	"fmt"
)

var ErrUnsupportedKind = errors.New("unsupported kind")

// UnsupportedKindError is raised (as a panic) when an operator receives a
// Result that was not built by a constructor, such as the zero Result.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedKind, e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ReasonError carries a failure payload that is not an error when it has to
// travel through error-typed channels such as a rejected promise.
type ReasonError struct {
	Reason any
}

func (e *ReasonError) Error() string {
	return fmt.Sprintf("%v", e.Reason)
}

// AsError returns reason unchanged when it is an error and wraps it in a
// ReasonError otherwise.
func AsError(reason any) error {
	if err, ok := reason.(error); ok && !IsNil(err) {
		return err
	}
	return &ReasonError{Reason: reason}
}

// Recovered converts a value obtained from recover into an error.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
