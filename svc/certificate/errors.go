package certificate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/certmailer/handler"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindGeneration
	KindSend
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindGeneration:
		return "generation"
	case KindSend:
		return "send"
	default:
		return "unknown"
	}
}

var (
	ErrValidation = errors.New("certificate.errors.validation")
	ErrGeneration = errors.New("certificate.errors.generation")
	ErrSend       = errors.New("certificate.errors.send")
	ErrUnknown    = errors.New("certificate.errors.unknown")

	// Client-facing validation messages.
	ErrFieldsRequired = errors.New("All fields are required")
	ErrInvalidEmail   = errors.New("Invalid email address")
)

// Error is a pipeline failure. Its message is safe to return to clients.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	cause := "unknown error"
	if e.Err != nil {
		// errors.Join separates causes with newlines; keep the message on one line.
		cause = strings.ReplaceAll(e.Err.Error(), "\n", ": ")
	}
	switch e.Kind {
	case KindValidation:
		return cause
	case KindGeneration:
		return "PDF generation failed: " + cause
	case KindSend:
		return "Email sending failed: " + cause
	default:
		return "Failed: " + cause
	}
}

func (e *Error) Unwrap() []error {
	return []error{e.sentinel(), e.Err}
}

// StatusCode maps the failure to an HTTP status.
func (e *Error) StatusCode() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindValidation:
		return ErrValidation
	case KindGeneration:
		return ErrGeneration
	case KindSend:
		return ErrSend
	default:
		return ErrUnknown
	}
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// AsError returns err as a pipeline Error. Errors from outside the pipeline
// become KindUnknown.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newError(KindUnknown, err)
}

// Classify implements handler.ErrorClassifier: every error is rendered
// through the pipeline taxonomy, so binder failures surface as
// "Failed: {cause}" with status 500.
func Classify(err error) handler.ErrorInfo {
	e := AsError(err)
	return handler.ErrorInfo{StatusCode: e.StatusCode(), Message: e.Error()}
}
