package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/dmitrymomot/certmailer/pkg/logger"
)

// gmailUserID addresses the account that owns the OAuth2 credentials.
const gmailUserID = "me"

// GmailSender implements EmailSender with the Gmail API users.messages.send
// call. Messages are sent as the authenticated account.
type GmailSender struct {
	svc  *gmail.Service
	from string
	log  *slog.Logger
}

// NewGmailSender creates a Gmail-backed email sender. opts must carry
// authentication, typically googleauth.Client.Options().
func NewGmailSender(ctx context.Context, cfg Config, log *slog.Logger, opts ...option.ClientOption) (*GmailSender, error) {
	if cfg.SenderAddress() == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: gmail client: %w", ErrInvalidConfig, err)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &GmailSender{
		svc:  svc,
		from: cfg.From(),
		log:  log.With(logger.Component("gmail")),
	}, nil
}

// SendEmail builds the raw MIME message and submits it in one attempt.
func (s *GmailSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	raw, err := BuildMIME(s.from, params)
	if err != nil {
		return err
	}

	msg, err := s.svc.Users.Messages.Send(gmailUserID, &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	s.log.InfoContext(ctx, "email sent",
		logger.MessageID(msg.Id),
		logger.Email(params.SendTo),
		slog.Int("cc", len(params.Cc)),
	)
	return nil
}
