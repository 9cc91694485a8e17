package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON encodes v as the response body, 200 OK unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorResponse hands err to the route's ErrorHandler instead of rendering.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error returns a Response that routes err through the ErrorHandler, so
// handlers and binders report failures the same way.
func Error(err error) Response {
	return errorResponse{err: err}
}

type templResponse struct {
	status    int
	component templ.Component
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	return t.component.Render(r.Context(), w)
}

// Templ renders a templ component as an HTML page.
func Templ(c templ.Component) Response {
	return templResponse{status: http.StatusOK, component: c}
}
