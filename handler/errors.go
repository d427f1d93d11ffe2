package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with an HTTP status code and a client-facing message.
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // Message rendered in the "error" field
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
