// Package packerr defines the error kinds surfaced by the packer library.
// Every error returned across a package boundary is either a *Error or wraps
// one, so callers can classify failures with errors.Is against the Err*
// sentinels.
package packerr

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrValidation     = errors.New("validation failed")
	ErrIncorrectInput = errors.New("incorrect input")
	ErrSystem         = errors.New("system error")
)

// Error carries a failure kind plus an optional message and cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Validationf reports a business rule violation.
func Validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// IncorrectInputf reports input that does not follow the task format.
func IncorrectInputf(format string, args ...any) error {
	return &Error{Kind: ErrIncorrectInput, Msg: fmt.Sprintf(format, args...)}
}

// FileNotFound wraps a failure to open the input file.
func FileNotFound(err error) error {
	return &Error{Kind: ErrFileNotFound, Err: err}
}

// System wraps any other failure.
func System(err error) error {
	return &Error{Kind: ErrSystem, Err: err}
}

// Wrap returns err unchanged if it already is a *Error, and wraps it as a
// system error otherwise. A nil err stays nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return err
	}
	return System(err)
}

// KindOf returns the kind sentinel of err, or nil if err is not classified.
func KindOf(err error) error {
	for _, k := range []error{ErrFileNotFound, ErrValidation, ErrIncorrectInput, ErrSystem} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
