// Package templates renders templ components into email bodies.
package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Render renders tpl to a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	if tpl == nil {
		return "", fmt.Errorf("templates: nil component")
	}
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderBodies renders the HTML and plain-text versions of one message.
func RenderBodies(ctx context.Context, html, text templ.Component) (htmlBody, textBody string, err error) {
	htmlBody, err = Render(ctx, html)
	if err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	textBody, err = Render(ctx, text)
	if err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return htmlBody, textBody, nil
}
