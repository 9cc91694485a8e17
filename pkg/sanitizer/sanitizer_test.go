package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/certmailer/pkg/sanitizer"
)

func TestApplyCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HELLO", sanitizer.Apply("  hello ", sanitizer.Trim, strings.ToUpper))
	assert.Equal(t, "x", sanitizer.Apply("x"))

	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
	assert.Equal(t, "Ada Lovelace", clean(" Ada\x00 Lovelace\x07 "))
}

func TestNormalizeUnicode(t *testing.T) {
	t.Parallel()

	decomposed := "Jose\u0301"
	composed := "Jos\u00e9"
	assert.NotEqual(t, composed, decomposed)
	assert.Equal(t, composed, sanitizer.NormalizeUnicode(decomposed))
	assert.Equal(t, composed, sanitizer.NormalizeUnicode(composed))
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\tb\nc\rd", sanitizer.RemoveControlChars("a\tb\nc\rd"))
	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x1bc\x7f"))
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada-Lovelace-King", sanitizer.CollapseWhitespace("Ada \t Lovelace\n\nKing", "-"))
	assert.Equal(t, "line one line two", sanitizer.SingleLine("  line one\r\n  line two \n"))
}

func TestWhitespace_Unicode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in string
	}{
		{"no-break space", "Jane\u00a0Doe"},
		{"narrow no-break space", "Jane\u202fDoe"},
		{"em space", "Jane\u2003Doe"},
		{"ideographic space", "Jane\u3000Doe"},
		{"line separator", "Jane\u2028Doe"},
		{"byte order mark", "Jane\ufeffDoe"},
		{"vertical tab", "Jane\vDoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, "Jane-Doe", sanitizer.CollapseWhitespace(tt.in, "-"))
			assert.Equal(t, tt.in, sanitizer.KeepASCIIAlphanumeric(tt.in))
			assert.Equal(t, "Jane", sanitizer.Trim(strings.TrimSuffix(tt.in, "Doe")))
		})
	}

	assert.Equal(t, "Jane Doe", sanitizer.Trim("\u00a0\ufeff Jane Doe\u3000"))
}

func TestKeepASCIIAlphanumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Jane O'Brien!!", "Jane OBrien"},
		{"Zo\u00eb Salda\u00f1a", "Zo Saldaa"},
		{"R2-D2 & C-3PO", "R2D2  C3PO"},
		{"   ", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.KeepASCIIAlphanumeric(tt.in))
		})
	}
}

func TestPreventHeaderInjection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Congrats!Bcc: evil@example.com", sanitizer.PreventHeaderInjection("Congrats!\r\nBcc: evil@example.com"))
	assert.Equal(t, "plain", sanitizer.PreventHeaderInjection("pl\x00ain"))
}
