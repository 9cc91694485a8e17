// Package email provides a provider-agnostic interface for sending
// transactional emails with attachments.
//
// # Architecture
//
// The package is built around the EmailSender interface, so transports can be
// swapped without changing application code. Supported transports:
//   - GmailSender submits a raw MIME message through the Gmail API as the
//     account that owns the OAuth2 credentials (the default)
//   - Postmark and Resend clients for hosted delivery
//   - DevSender for local development (writes messages to disk)
//
// NewSender picks the transport from Config.Provider and bounds every send
// with Config.SendTimeout.
//
// All implementations validate SendEmailParams before sending and wrap
// delivery failures with ErrFailedToSendEmail.
//
// # Usage
//
//	cfg := email.Config{
//	    Provider:    email.ProviderGmail,
//	    SenderEmail: "courses@example.com",
//	    SenderName:  "Tertiary Courses",
//	}
//
//	sender, err := email.NewSender(ctx, cfg, log, auth.Options()...)
//	if err != nil {
//	    return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "student@example.com",
//	    Cc:       []string{"office@example.com"},
//	    Subject:  "Certificate of Achievement: Congratulations!",
//	    BodyHTML: htmlBody,
//	    BodyText: textBody,
//	    Attachments: []email.Attachment{{
//	        Filename:    "Ada-Lovelace-Certificate-of-Achievement.pdf",
//	        ContentType: "application/pdf",
//	        Content:     pdf,
//	    }},
//	})
//
// # Raw messages
//
// BuildMIME renders params as multipart/mixed with a multipart/alternative
// body (text, then HTML) followed by base64 attachments. Header values are
// stripped of CR and LF.
//
// # Error Handling
//
//   - ErrInvalidConfig: configuration validation failed
//   - ErrUnknownProvider: MAIL_PROVIDER names no transport
//   - ErrInvalidParams: message parameters failed validation
//   - ErrBuildMessage: the MIME message could not be rendered
//   - ErrFailedToSendEmail: delivery failed
package email
