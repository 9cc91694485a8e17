package certificate

import (
	"context"
	"strings"

	"github.com/dmitrymomot/certmailer/pkg/email"
	"github.com/dmitrymomot/certmailer/pkg/email/templates"
)

const (
	pdfContentType = "application/pdf"
	emailTag       = "certificate"
)

// Delivery is everything needed to mail one certificate.
type Delivery struct {
	To          string
	StudentName string
	CourseName  string
	PDF         []byte
	FileName    string
}

// Mailer composes the certificate email and hands it to an email.EmailSender.
type Mailer struct {
	sender email.EmailSender
	cfg    Config
}

// NewMailer creates a Mailer. It panics if sender is nil.
func NewMailer(sender email.EmailSender, cfg Config) *Mailer {
	if sender == nil {
		panic("certificate: email sender is nil")
	}
	cc := make([]string, 0, len(cfg.CCRecipients))
	for _, addr := range cfg.CCRecipients {
		if addr = strings.TrimSpace(addr); addr != "" {
			cc = append(cc, addr)
		}
	}
	cfg.CCRecipients = cc
	return &Mailer{sender: sender, cfg: cfg}
}

// Compose renders the message for d without sending it.
func (m *Mailer) Compose(ctx context.Context, d Delivery) (email.SendEmailParams, error) {
	letter := LetterData{StudentName: d.StudentName, CourseName: d.CourseName}
	html, text, err := templates.RenderBodies(ctx, LetterHTML(letter), LetterText(letter))
	if err != nil {
		return email.SendEmailParams{}, err
	}

	return email.SendEmailParams{
		SendTo:   d.To,
		Cc:       append([]string(nil), m.cfg.CCRecipients...),
		Subject:  m.cfg.Subject,
		BodyHTML: html,
		BodyText: text,
		Attachments: []email.Attachment{{
			Filename:    d.FileName,
			ContentType: pdfContentType,
			Content:     d.PDF,
		}},
		Tag: emailTag,
	}, nil
}

// Send delivers the certificate in a single attempt. Failures are returned as
// a KindSend *Error.
func (m *Mailer) Send(ctx context.Context, d Delivery) error {
	params, err := m.Compose(ctx, d)
	if err != nil {
		return newError(KindSend, err)
	}
	if err := m.sender.SendEmail(ctx, params); err != nil {
		return newError(KindSend, err)
	}
	return nil
}
