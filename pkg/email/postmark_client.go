package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
	config Config
}

// PostmarkOption configures the Postmark client.
type PostmarkOption func(*postmark.Client)

// WithPostmarkBaseURL points the client at a different API host.
func WithPostmarkBaseURL(url string) PostmarkOption {
	return func(c *postmark.Client) {
		c.BaseURL = strings.TrimSuffix(url, "/")
	}
}

// NewPostmarkClient creates a Postmark-backed email sender.
// Both tokens are required for runtime operation.
func NewPostmarkClient(cfg Config, opts ...PostmarkOption) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	cfg.Provider = ProviderPostmark
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	for _, opt := range opts {
		opt(client)
	}

	return &postmarkClient{
		client: client,
		config: cfg,
	}, nil
}

// MustNewPostmarkClient creates a Postmark client that panics on invalid config.
func MustNewPostmarkClient(cfg Config) EmailSender {
	client, err := NewPostmarkClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Opens and HTML link clicks are tracked. Reply-To is the support address
// when one is configured.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	attachments := make([]postmark.Attachment, 0, len(params.Attachments))
	for _, a := range params.Attachments {
		attachments = append(attachments, postmark.Attachment{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.contentType(),
		})
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:        c.config.From(),
		ReplyTo:     c.config.SupportEmail,
		To:          params.SendTo,
		Cc:          strings.Join(params.Cc, ","),
		Subject:     params.Subject,
		Tag:         params.Tag,
		HTMLBody:    params.BodyHTML,
		TextBody:    params.BodyText,
		Attachments: attachments,
		TrackOpens:  true,
		TrackLinks:  "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
