package certificate

import (
	"strings"

	"github.com/dmitrymomot/certmailer/pkg/validator"
)

// Request is one certificate form submission.
type Request struct {
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	CourseName   string `json:"courseName"`
	CourseDates  string `json:"courseDates"`
}

// Normalize trims surrounding whitespace from every field.
func (r Request) Normalize() Request {
	return Request{
		StudentName:  strings.TrimSpace(r.StudentName),
		StudentEmail: strings.TrimSpace(r.StudentEmail),
		CourseName:   strings.TrimSpace(r.CourseName),
		CourseDates:  strings.TrimSpace(r.CourseDates),
	}
}

// Validate checks required fields first, then the email address. The
// returned *Error carries the client message; the field details are kept in
// the wrapped validator.ValidationErrors.
func (r Request) Validate() error {
	err := validator.Apply(
		validator.RequiredString("studentName", r.StudentName),
		validator.RequiredString("studentEmail", r.StudentEmail),
		validator.RequiredString("courseName", r.CourseName),
		validator.RequiredString("courseDates", r.CourseDates),
	)
	if err != nil {
		return newError(KindValidation, &validationFailure{msg: ErrFieldsRequired, details: err})
	}

	if err := validator.Apply(validator.ValidEmail("studentEmail", r.StudentEmail)); err != nil {
		return newError(KindValidation, &validationFailure{msg: ErrInvalidEmail, details: err})
	}
	return nil
}

// validationFailure pairs the client message with the per-field details.
type validationFailure struct {
	msg     error
	details error
}

func (v *validationFailure) Error() string { return v.msg.Error() }

func (v *validationFailure) Unwrap() []error { return []error{v.msg, v.details} }
