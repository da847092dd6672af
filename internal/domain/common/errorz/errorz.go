package errorz

import (
	"errors"
	"fmt"
)

// Sentinels for the error taxonomy. Services wrap them via the
// constructors below; the HTTP layer maps them to status codes.
var (
	Validation   = errors.New("validation error")
	Unauthorized = errors.New("unauthorized")
	Forbidden    = errors.New("forbidden")
	NotFound     = errors.New("not found")
	Conflict     = errors.New("conflict")
)

// Error carries a client-facing message on top of a taxonomy sentinel.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func wrap(kind error, format string, args ...interface{}) error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) error {
	return wrap(Validation, format, args...)
}

func Unauthorizedf(format string, args ...interface{}) error {
	return wrap(Unauthorized, format, args...)
}

func Forbiddenf(format string, args ...interface{}) error {
	return wrap(Forbidden, format, args...)
}

func NotFoundf(format string, args ...interface{}) error {
	return wrap(NotFound, format, args...)
}

func Conflictf(format string, args ...interface{}) error {
	return wrap(Conflict, format, args...)
}
