package certificate_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/certmailer/handler"
	"github.com/dmitrymomot/certmailer/pkg/binder"
	"github.com/dmitrymomot/certmailer/svc/certificate"
)

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("quota exceeded")

	tests := []struct {
		kind     certificate.Kind
		sentinel error
		status   int
		message  string
	}{
		{certificate.KindValidation, certificate.ErrValidation, http.StatusBadRequest, "quota exceeded"},
		{certificate.KindGeneration, certificate.ErrGeneration, http.StatusInternalServerError, "PDF generation failed: quota exceeded"},
		{certificate.KindSend, certificate.ErrSend, http.StatusInternalServerError, "Email sending failed: quota exceeded"},
		{certificate.KindUnknown, certificate.ErrUnknown, http.StatusInternalServerError, "Failed: quota exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			err := &certificate.Error{Kind: tt.kind, Err: cause}
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.status, err.StatusCode())
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestError_JoinedCauseStaysOnOneLine(t *testing.T) {
	t.Parallel()

	err := &certificate.Error{
		Kind: certificate.KindSend,
		Err:  errors.Join(errors.New("mailer.errors.failed_to_send_email"), errors.New("403 forbidden")),
	}
	assert.Equal(t, "Email sending failed: mailer.errors.failed_to_send_email: 403 forbidden", err.Error())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	info := certificate.Classify(fmt.Errorf("bind: %w", binder.ErrFailedToParseJSON))
	assert.Equal(t, http.StatusInternalServerError, info.StatusCode)
	assert.Equal(t, "Failed: bind: "+binder.ErrFailedToParseJSON.Error(), info.Message)

	info = certificate.Classify(&certificate.Error{Kind: certificate.KindValidation, Err: certificate.ErrInvalidEmail})
	assert.Equal(t, handler.ErrorInfo{StatusCode: http.StatusBadRequest, Message: "Invalid email address"}, info)
}
