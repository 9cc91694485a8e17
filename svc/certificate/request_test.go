package certificate_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certmailer/pkg/validator"
	"github.com/dmitrymomot/certmailer/svc/certificate"
)

func validRequest() certificate.Request {
	return certificate.Request{
		StudentName:  "Ada Lovelace",
		StudentEmail: "ada@example.com",
		CourseName:   "Analytical Engines",
		CourseDates:  "January 15-17, 2025",
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(r *certificate.Request)
		wantMsg    string
		wantFields []string
	}{
		{name: "valid", mutate: func(r *certificate.Request) {}},
		{
			name:       "missing name",
			mutate:     func(r *certificate.Request) { r.StudentName = "" },
			wantMsg:    "All fields are required",
			wantFields: []string{"studentName"},
		},
		{
			name:       "whitespace-only name",
			mutate:     func(r *certificate.Request) { r.StudentName = "\t \u00a0 \r\n" },
			wantMsg:    "All fields are required",
			wantFields: []string{"studentName"},
		},
		{
			name:       "blank course dates",
			mutate:     func(r *certificate.Request) { r.CourseDates = "   " },
			wantMsg:    "All fields are required",
			wantFields: []string{"courseDates"},
		},
		{
			name: "missing fields are reported before a bad email",
			mutate: func(r *certificate.Request) {
				r.StudentEmail = "not-an-email"
				r.CourseName = ""
			},
			wantMsg:    "All fields are required",
			wantFields: []string{"courseName"},
		},
		{
			name:       "invalid email",
			mutate:     func(r *certificate.Request) { r.StudentEmail = "a@b" },
			wantMsg:    "Invalid email address",
			wantFields: []string{"studentEmail"},
		},
		{
			name:    "single letter tld",
			mutate:  func(r *certificate.Request) { r.StudentEmail = "ada@example.c" },
			wantMsg: "Invalid email address",
		},
		{
			name:   "uppercase email",
			mutate: func(r *certificate.Request) { r.StudentEmail = "ADA.LOVELACE+cert@Example.ORG" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()

			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, certificate.ErrValidation)

			var cerr *certificate.Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, certificate.KindValidation, cerr.Kind)
			assert.Equal(t, http.StatusBadRequest, cerr.StatusCode())

			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, validator.ExtractValidationErrors(err).Fields())
			}
		})
	}
}

func TestRequest_Normalize(t *testing.T) {
	t.Parallel()

	req := certificate.Request{
		StudentName:  "  Ada ",
		StudentEmail: " ada@example.com\n",
		CourseName:   "\tGo ",
		CourseDates:  " May ",
	}.Normalize()

	assert.Equal(t, certificate.Request{
		StudentName:  "Ada",
		StudentEmail: "ada@example.com",
		CourseName:   "Go",
		CourseDates:  "May",
	}, req)
}
