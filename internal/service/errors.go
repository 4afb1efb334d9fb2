package service

import "errors"

// ErrValidation marks input errors. Services wrap it with a message that is
// safe to show to the caller.
var ErrValidation = errors.New("validation error")

func validationError(msg string) error {
	return &validationErr{msg: msg}
}

type validationErr struct {
	msg string
}

func (e *validationErr) Error() string { return e.msg }

func (e *validationErr) Unwrap() error { return ErrValidation }
