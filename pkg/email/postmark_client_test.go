package email_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certmailer/pkg/email"
)

func postmarkConfig() email.Config {
	return email.Config{
		Provider:             email.ProviderPostmark,
		PostmarkServerToken:  "test-server-token",
		PostmarkAccountToken: "test-account-token",
		SenderEmail:          "sender@example.com",
		SenderName:           "Tertiary Courses",
		SupportEmail:         "support@example.com",
	}
}

func TestNewPostmarkClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *email.Config)
		errMsg string
	}{
		{"empty server token", func(c *email.Config) { c.PostmarkServerToken = "" }, "PostmarkServerToken is required"},
		{"empty account token", func(c *email.Config) { c.PostmarkAccountToken = "" }, "PostmarkAccountToken is required"},
		{"missing sender email", func(c *email.Config) { c.SenderEmail = "" }, "SenderEmail is required"},
		{"invalid sender email format", func(c *email.Config) { c.SenderEmail = "invalid-email" }, "SenderEmail must be a valid email address"},
		{"invalid support email format", func(c *email.Config) { c.SupportEmail = "invalid" }, "SupportEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := postmarkConfig()
			tt.mutate(&cfg)

			client, err := email.NewPostmarkClient(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Panics(t, func() { email.MustNewPostmarkClient(email.Config{}) })
}

func TestPostmarkClient_SendEmail(t *testing.T) {
	t.Parallel()

	var (
		path  string
		token string
		body  map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		token = r.Header.Get("X-Postmark-Server-Token")
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"student@example.com","MessageID":"pm-1","ErrorCode":0,"Message":"OK"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := email.NewPostmarkClient(postmarkConfig(), email.WithPostmarkBaseURL(srv.URL))
	require.NoError(t, err)

	require.NoError(t, client.SendEmail(context.Background(), validParams()))

	assert.True(t, strings.HasSuffix(path, "/email"))
	assert.Equal(t, "test-server-token", token)
	assert.Equal(t, `"Tertiary Courses" <sender@example.com>`, body["From"])
	assert.Equal(t, "support@example.com", body["ReplyTo"])
	assert.Equal(t, "office@example.com,admin@example.org", body["Cc"])
	assert.Equal(t, "Dear Ada,", body["TextBody"])

	attachments, ok := body["Attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)
	att := attachments[0].(map[string]any)
	assert.Equal(t, "Ada-Certificate-of-Achievement.pdf", att["Name"])
	assert.Equal(t, "application/pdf", att["ContentType"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.7")), att["Content"])
}

func TestPostmarkClient_SendEmail_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := email.NewPostmarkClient(postmarkConfig(), email.WithPostmarkBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), validParams())
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}

func TestPostmarkClient_SendEmail_ValidationError(t *testing.T) {
	t.Parallel()

	client, err := email.NewPostmarkClient(postmarkConfig())
	require.NoError(t, err)

	params := validParams()
	params.SendTo = ""
	assert.ErrorIs(t, client.SendEmail(context.Background(), params), email.ErrInvalidParams)
}
