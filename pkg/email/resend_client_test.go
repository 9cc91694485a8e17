package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certmailer/pkg/email"
)

func resendConfig() email.Config {
	return email.Config{
		Provider:     email.ProviderResend,
		ResendAPIKey: "re_test",
		SenderEmail:  "sender@example.com",
		SenderName:   "Tertiary Courses",
		SupportEmail: "support@example.com",
	}
}

func TestNewResendClient(t *testing.T) {
	t.Parallel()

	cfg := resendConfig()
	cfg.ResendAPIKey = ""
	_, err := email.NewResendClient(cfg)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	client, err := email.NewResendClient(resendConfig())
	require.NoError(t, err)
	assert.NotNil(t, client)

	params := validParams()
	params.BodyHTML = ""
	assert.ErrorIs(t, client.SendEmail(context.Background(), params), email.ErrInvalidParams)
}

func TestResendClient_SendEmail(t *testing.T) {
	t.Parallel()

	var (
		method string
		path   string
		auth   string
		body   struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Cc      []string `json:"cc"`
			ReplyTo string   `json:"reply_to"`
			Subject string   `json:"subject"`
			HTML    string   `json:"html"`
			Text    string   `json:"text"`
			Files   []struct {
				Filename    string `json:"filename"`
				ContentType string `json:"content_type"`
				Content     []int  `json:"content"`
			} `json:"attachments"`
		}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re-1"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := email.NewResendClient(resendConfig(), email.WithResendBaseURL(srv.URL))
	require.NoError(t, err)

	require.NoError(t, client.SendEmail(context.Background(), validParams()))

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/emails", path)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, `"Tertiary Courses" <sender@example.com>`, body.From)
	assert.Equal(t, []string{"student@example.com"}, body.To)
	assert.Equal(t, []string{"office@example.com", "admin@example.org"}, body.Cc)
	assert.Equal(t, "support@example.com", body.ReplyTo)
	assert.Equal(t, "Certificate of Achievement: Congratulations!", body.Subject)
	assert.Equal(t, "<p>Dear Ada,</p>", body.HTML)
	assert.Equal(t, "Dear Ada,", body.Text)

	require.Len(t, body.Files, 1)
	assert.Equal(t, "Ada-Certificate-of-Achievement.pdf", body.Files[0].Filename)
	assert.Equal(t, "application/pdf", body.Files[0].ContentType)

	content := make([]byte, len(body.Files[0].Content))
	for i, b := range body.Files[0].Content {
		content[i] = byte(b)
	}
	assert.Equal(t, []byte("%PDF-1.7"), content)
}

func TestResendClient_SendEmail_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid cc field"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := email.NewResendClient(resendConfig(), email.WithResendBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), validParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.Contains(t, err.Error(), "resend:")
	assert.Contains(t, err.Error(), "Invalid cc field")
}
