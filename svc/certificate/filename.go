package certificate

import (
	"github.com/dmitrymomot/certmailer/pkg/sanitizer"
)

// FileNameSuffix ends every attachment name.
const FileNameSuffix = "-Certificate-of-Achievement.pdf"

// FileName derives the attachment name from a student name: trim, drop every
// rune that is neither ASCII alphanumeric nor Unicode whitespace, then join
// the remaining words with "-".
// Stripping runs after the trim, so "Jane !" yields "Jane-".
func FileName(studentName string) string {
	core := sanitizer.Apply(studentName,
		sanitizer.Trim,
		sanitizer.KeepASCIIAlphanumeric,
		func(s string) string { return sanitizer.CollapseWhitespace(s, "-") },
	)
	return core + FileNameSuffix
}
