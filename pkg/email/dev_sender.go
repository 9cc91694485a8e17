package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements EmailSender for local development.
// It writes each message to a directory instead of delivering it: the HTML
// body, the text body, a JSON metadata file and every attachment.
type DevSender struct {
	dir  string
	from string
	now  func() time.Time
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

// WithFrom records the sender address in the metadata file.
func (d *DevSender) WithFrom(from string) *DevSender {
	d.from = from
	return d
}

// emailMetadata contains the email data saved to JSON (excluding bodies).
type emailMetadata struct {
	Timestamp   string               `json:"timestamp"`
	From        string               `json:"from,omitempty"`
	SendTo      string               `json:"send_to"`
	Cc          []string             `json:"cc,omitempty"`
	Subject     string               `json:"subject"`
	Tag         string               `json:"tag,omitempty"`
	Attachments []attachmentMetadata `json:"attachments,omitempty"`
}

type attachmentMetadata struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Path        string `json:"path"`
}

// SendEmail saves the message files to the configured directory.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	timestamp := now.Format("2006_01_02_150405.000000")

	// Use tag if available, otherwise use subject
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	baseFilename := fmt.Sprintf("%s_%s", timestamp, sanitizeFilename(identifier))

	if err := d.write(baseFilename+".html", []byte(params.BodyHTML)); err != nil {
		return err
	}
	if params.BodyText != "" {
		if err := d.write(baseFilename+".txt", []byte(params.BodyText)); err != nil {
			return err
		}
	}

	metadata := emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      d.from,
		SendTo:    params.SendTo,
		Cc:        params.Cc,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}

	for _, a := range params.Attachments {
		name := baseFilename + "_" + sanitizeFilename(a.Filename)
		if err := d.write(name, a.Content); err != nil {
			return err
		}
		metadata.Attachments = append(metadata.Attachments, attachmentMetadata{
			Filename:    a.Filename,
			ContentType: a.contentType(),
			Size:        len(a.Content),
			Path:        name,
		})
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	return d.write(baseFilename+".json", jsonData)
}

func (d *DevSender) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", ErrFailedToSendEmail, name, err)
	}
	return nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe, lower-case filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
