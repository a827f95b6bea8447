// utils/errors.go - application error kinds surfaced by the API
package utils

import "fmt"

type ErrorKind string

const (
	KindValidation   ErrorKind = "validation_error"
	KindNotFound     ErrorKind = "not_found"
	KindInvalidState ErrorKind = "invalid_state"
	KindGameOver     ErrorKind = "game_over"
	KindInvalidGuess ErrorKind = "invalid_guess"
	KindEmptyPool    ErrorKind = "empty_pool"
)

// Error carries a machine-readable kind alongside the message.
// Handlers return these as-is; the Fiber error handler maps kinds
// to HTTP status codes.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func E(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of an application error, or "" for other errors.
func KindOf(err error) ErrorKind {
	if appErr, ok := err.(*Error); ok {
		return appErr.Kind
	}
	return ""
}
