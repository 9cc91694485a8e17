package email

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/certmailer/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo      string       `json:"send_to"`               // Email address of the recipient
	Cc          []string     `json:"cc,omitempty"`          // Carbon-copy recipients
	Subject     string       `json:"subject"`               // Subject of the email
	BodyHTML    string       `json:"body_html"`             // HTML body of the email
	BodyText    string       `json:"body_text,omitempty"`   // Plain-text alternative
	Attachments []Attachment `json:"attachments,omitempty"` // Files attached to the message
	Tag         string       `json:"tag,omitempty"`         // Optional
}

// Attachment is a file sent along with a message.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// Validate checks that the params describe a deliverable message.
func (p SendEmailParams) Validate() error {
	rules := []validator.Rule{
		validator.RequiredString("SendTo", p.SendTo),
		validator.ValidEmail("SendTo", p.SendTo),
		validator.RequiredString("Subject", p.Subject),
		validator.RequiredString("BodyHTML", p.BodyHTML),
	}
	for i, cc := range p.Cc {
		rules = append(rules, validator.ValidEmail(fmt.Sprintf("Cc[%d]", i), cc))
	}
	for i, a := range p.Attachments {
		rules = append(rules,
			validator.RequiredString(fmt.Sprintf("Attachments[%d].Filename", i), a.Filename),
			validator.Rule{
				Check: func() bool { return len(a.Content) > 0 },
				Error: validator.ValidationError{
					Field:          fmt.Sprintf("Attachments[%d].Content", i),
					Message:        "attachment is empty",
					TranslationKey: "validation.required",
				},
			},
		)
	}

	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

// contentType returns the attachment media type, defaulting to
// application/octet-stream.
func (a Attachment) contentType() string {
	if a.ContentType == "" {
		return "application/octet-stream"
	}
	return a.ContentType
}
