package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"

	"github.com/dmitrymomot/certmailer/pkg/sanitizer"
)

const base64LineLength = 76

// BuildMIME renders params as an RFC 5322 message:
//
//	multipart/mixed
//	├── multipart/alternative
//	│   ├── text/plain (when BodyText is set)
//	│   └── text/html
//	└── one part per attachment, base64 encoded
//
// Header values are stripped of line breaks before encoding.
func BuildMIME(from string, params SendEmailParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mixed := multipart.NewWriter(&buf)

	header := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, value)
	}
	header("From", headerValue(from))
	header("To", headerValue(params.SendTo))
	if len(params.Cc) > 0 {
		header("Cc", headerValue(strings.Join(params.Cc, ", ")))
	}
	header("Subject", mime.QEncoding.Encode("utf-8", headerValue(params.Subject)))
	header("Date", time.Now().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", mime.FormatMediaType("multipart/mixed", map[string]string{"boundary": mixed.Boundary()}))
	buf.WriteString("\r\n")

	body, boundary, err := buildAlternative(params)
	if err != nil {
		return nil, err
	}
	altPart, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {mime.FormatMediaType("multipart/alternative", map[string]string{"boundary": boundary})},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildMessage, err)
	}
	if _, err := altPart.Write(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildMessage, err)
	}

	for _, a := range params.Attachments {
		if err := writeAttachment(mixed, a); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildMessage, err)
		}
	}

	if err := mixed.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildMessage, err)
	}
	return buf.Bytes(), nil
}

func buildAlternative(params SendEmailParams) ([]byte, string, error) {
	var buf bytes.Buffer
	alt := multipart.NewWriter(&buf)

	if params.BodyText != "" {
		if err := writeQuotedPrintable(alt, "text/plain", params.BodyText); err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrBuildMessage, err)
		}
	}
	if err := writeQuotedPrintable(alt, "text/html", params.BodyHTML); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrBuildMessage, err)
	}
	if err := alt.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrBuildMessage, err)
	}
	return buf.Bytes(), alt.Boundary(), nil
}

func writeQuotedPrintable(w *multipart.Writer, mediaType, body string) error {
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {mime.FormatMediaType(mediaType, map[string]string{"charset": "UTF-8"})},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return err
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := io.WriteString(qp, body); err != nil {
		return err
	}
	return qp.Close()
}

func writeAttachment(w *multipart.Writer, a Attachment) error {
	filename := headerValue(a.Filename)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {mime.FormatMediaType(a.contentType(), map[string]string{"name": filename})},
		"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": filename})},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(a.Content)
	for len(encoded) > base64LineLength {
		if _, err := io.WriteString(part, encoded[:base64LineLength]+"\r\n"); err != nil {
			return err
		}
		encoded = encoded[base64LineLength:]
	}
	_, err = io.WriteString(part, encoded+"\r\n")
	return err
}

func headerValue(s string) string {
	return sanitizer.PreventHeaderInjection(strings.TrimSpace(s))
}
