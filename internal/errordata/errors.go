package errordata

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrAuth        = errors.New("invalid credentials")
	ErrPersistence = errors.New("persistence error")
	ErrCompletion  = errors.New("completion error")
)

// Error pairs a taxonomy kind with the message shown to the user and an
// optional underlying cause.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil && e.Msg == "" {
		return e.Cause.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func newError(kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func Validation(format string, args ...interface{}) error {
	return newError(ErrValidation, nil, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, nil, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, nil, format, args...)
}

func Auth(format string, args ...interface{}) error {
	return newError(ErrAuth, nil, format, args...)
}

func Persistence(cause error, format string, args ...interface{}) error {
	return newError(ErrPersistence, cause, format, args...)
}

func Completion(cause error, format string, args ...interface{}) error {
	return newError(ErrCompletion, cause, format, args...)
}

// GenericMessage stands in for errors that carry no user-facing text.
const GenericMessage = "Internal server error"

// UserMessage returns the text safe to surface to the caller. Errors outside
// the taxonomy never leak their detail; log them instead.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return GenericMessage
}

// HTTPStatus maps the taxonomy onto the wire contract's status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict), errors.Is(err, ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
