package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"
)

// ResendOption configures the Resend client.
type ResendOption func(*resend.Client)

// WithResendBaseURL points the client at a different API host. Invalid URLs
// are ignored.
func WithResendBaseURL(rawURL string) ResendOption {
	return func(c *resend.Client) {
		u, err := url.Parse(strings.TrimSuffix(rawURL, "/") + "/")
		if err != nil {
			return
		}
		c.BaseURL = u
	}
}

type resendClient struct {
	client *resend.Client
	config Config
}

// NewResendClient creates a Resend-backed email sender.
func NewResendClient(cfg Config, opts ...ResendOption) (EmailSender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: ResendAPIKey is required", ErrInvalidConfig)
	}
	cfg.Provider = ProviderResend
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	for _, opt := range opts {
		opt(client)
	}

	return &resendClient{
		client: client,
		config: cfg,
	}, nil
}

func (c *resendClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	attachments := make([]*resend.Attachment, 0, len(params.Attachments))
	for _, a := range params.Attachments {
		attachments = append(attachments, &resend.Attachment{
			Content:     a.Content,
			Filename:    a.Filename,
			ContentType: a.contentType(),
		})
	}

	req := &resend.SendEmailRequest{
		From:        c.config.From(),
		To:          []string{params.SendTo},
		Cc:          params.Cc,
		ReplyTo:     c.config.SupportEmail,
		Subject:     params.Subject,
		Html:        params.BodyHTML,
		Text:        params.BodyText,
		Attachments: attachments,
	}
	if _, err := c.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("resend: %w", err))
	}
	return nil
}
