// Package binder decodes HTTP request bodies into typed request structs for
// handler.Wrap.
//
// JSON enforces the application/json media type, a body size limit and
// strict field matching, then cleans every string field in place: Unicode is
// normalised to NFC and control characters are removed. Trimming is left to
// validation so that whitespace-only values are still reported as missing.
package binder
