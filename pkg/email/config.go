package email

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrymomot/certmailer/pkg/validator"
)

// Provider selects the transport used to deliver mail.
type Provider string

const (
	ProviderGmail    Provider = "gmail"
	ProviderPostmark Provider = "postmark"
	ProviderResend   Provider = "resend"
	ProviderDev      Provider = "dev"
)

// Config holds email service configuration.
// Provider credentials are only checked for the selected provider, so a
// development setup needs nothing beyond a sender address.
type Config struct {
	Provider Provider `env:"MAIL_PROVIDER" envDefault:"gmail"`

	SenderEmail  string `env:"SENDER_EMAIL"`
	EmailUser    string `env:"EMAIL_USER"` // fallback for SenderEmail
	SenderName   string `env:"SENDER_NAME" envDefault:"Tertiary Courses"`
	SupportEmail string `env:"SUPPORT_EMAIL"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`

	DevDir      string        `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"30s"`
}

// SenderAddress returns SenderEmail, falling back to EmailUser.
func (c Config) SenderAddress() string {
	if addr := strings.TrimSpace(c.SenderEmail); addr != "" {
		return addr
	}
	return strings.TrimSpace(c.EmailUser)
}

// From returns the formatted From header value, e.g.
// "Tertiary Courses" <noreply@example.com>.
func (c Config) From() string {
	addr := mail.Address{Name: strings.TrimSpace(c.SenderName), Address: c.SenderAddress()}
	return addr.String()
}

func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGmail, ProviderPostmark, ProviderResend, ProviderDev:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}

	if c.SenderAddress() == "" {
		return fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if err := validator.Apply(validator.ValidEmail("sender_email", c.SenderAddress())); err != nil {
		return fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if c.SupportEmail != "" {
		if err := validator.Apply(validator.ValidEmail("support_email", c.SupportEmail)); err != nil {
			return fmt.Errorf("%w: SupportEmail must be a valid email address", ErrInvalidConfig)
		}
	}

	switch c.Provider {
	case ProviderPostmark:
		if c.PostmarkServerToken == "" {
			return fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
		}
		if c.PostmarkAccountToken == "" {
			return fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
		}
	case ProviderResend:
		if c.ResendAPIKey == "" {
			return fmt.Errorf("%w: ResendAPIKey is required", ErrInvalidConfig)
		}
	case ProviderDev:
		if strings.TrimSpace(c.DevDir) == "" {
			return fmt.Errorf("%w: DevDir is required", ErrInvalidConfig)
		}
	}
	return nil
}
