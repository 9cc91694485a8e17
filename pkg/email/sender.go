package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
)

// NewSender builds the EmailSender selected by cfg.Provider. googleOpts are
// only used by the Gmail provider. Every send is bounded by cfg.SendTimeout.
func NewSender(ctx context.Context, cfg Config, log *slog.Logger, googleOpts ...option.ClientOption) (EmailSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		sender EmailSender
		err    error
	)
	switch cfg.Provider {
	case ProviderGmail:
		sender, err = NewGmailSender(ctx, cfg, log, googleOpts...)
	case ProviderPostmark:
		sender, err = NewPostmarkClient(cfg)
	case ProviderResend:
		sender, err = NewResendClient(cfg)
	case ProviderDev:
		sender = NewDevSender(cfg.DevDir).WithFrom(cfg.From())
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithTimeout(sender, cfg.SendTimeout), nil
}

// WithTimeout bounds every SendEmail call of sender by d. A non-positive d
// returns sender unchanged.
func WithTimeout(sender EmailSender, d time.Duration) EmailSender {
	if d <= 0 {
		return sender
	}
	return &timeoutSender{next: sender, timeout: d}
}

type timeoutSender struct {
	next    EmailSender
	timeout time.Duration
}

func (s *timeoutSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.SendEmail(ctx, params)
}
