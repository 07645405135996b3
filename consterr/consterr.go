// Package consterr makes it possible to declare sentinel errors as constants.
//
//	const ErrSomething consterr.Error = "something is an error"
package consterr

import (
	"errors"
	"fmt"
)

// Error is an implementation for the error interface that allows you to declare exported globals with the `const` keyword.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// F returns an error that formats the detail according to the format specifier,
// while remaining matchable with errors.Is against the original Error constant.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

// Wrap bundles together another error value with this Error,
// and returns an error value that contains both of them.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

type wrapper struct {
	Owner   Error
	Wrapped error // must be not nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
