package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler.errors.nil_response")
)

// HTTPError is an error with an explicit status code and client message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return e.Message
}

func (e HTTPError) StatusCode() int { return e.Code }

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
