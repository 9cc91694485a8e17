// Package sanitizer provides small composable string transforms applied to
// untrusted input before it reaches templates, document APIs or mail headers.
//
// Transforms are plain func(string) string values and can be chained:
//
//	clean := sanitizer.Compose(
//		sanitizer.NormalizeUnicode,
//		sanitizer.RemoveControlChars,
//		sanitizer.Trim,
//	)
//	name := clean(req.StudentName)
package sanitizer
