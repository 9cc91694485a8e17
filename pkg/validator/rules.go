package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MaxLenString fails when value is longer than max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

// Matches fails when value is blank or does not match re. Pass a
// package-level compiled expression; description names the expected format
// in the error message.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != "" && re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", description),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}

// emailPattern accepts conventional local@domain.tld addresses: ASCII letters,
// digits and ._%+- in the local part, a dotted domain and an alphabetic TLD of
// two or more letters.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// ValidEmail fails when value is not a conventional local@domain.tld address.
func ValidEmail(field, value string) Rule {
	rule := Matches(field, value, emailPattern, "email address")
	rule.Error.TranslationKey = "validation.email"
	return rule
}
