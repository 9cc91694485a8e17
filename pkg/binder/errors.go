package binder

import "errors"

var (
	ErrMissingContentType   = errors.New("binder.errors.missing_content_type")
	ErrUnsupportedMediaType = errors.New("binder.errors.unsupported_media_type")
	ErrBodyTooLarge         = errors.New("binder.errors.body_too_large")
	ErrFailedToParseJSON    = errors.New("binder.errors.failed_to_parse_json")
)
