package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// space matches Unicode whitespace and line terminators, including the
// no-break and byte order mark spaces that \s alone misses.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	whitespaceRun        = regexp.MustCompile(`[` + space + `]+`)
	nonAlphanumericSpace = regexp.MustCompile(`[^A-Za-z0-9` + space + `]`)
)

// Trim removes leading and trailing whitespace as matched by CollapseWhitespace.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || r == '\uFEFF'
}

// NormalizeUnicode converts s to NFC so visually identical input compares
// and renders the same regardless of how the client composed it.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars drops control characters except tab, newline and
// carriage return.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// CollapseWhitespace replaces each run of whitespace with sep.
func CollapseWhitespace(s, sep string) string {
	return whitespaceRun.ReplaceAllString(s, sep)
}

// SingleLine joins lines and collapses whitespace to single spaces.
func SingleLine(s string) string {
	return Trim(CollapseWhitespace(s, " "))
}

// KeepASCIIAlphanumeric removes every character outside [A-Za-z0-9] and
// whitespace.
func KeepASCIIAlphanumeric(s string) string {
	return nonAlphanumericSpace.ReplaceAllString(s, "")
}

// PreventHeaderInjection strips CR, LF and NUL so s is safe inside a single
// mail or HTTP header line.
func PreventHeaderInjection(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', 0:
			return -1
		}
		return r
	}, s)
}
