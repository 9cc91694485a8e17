package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/certmailer/pkg/sanitizer"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies.
const DefaultMaxJSONSize = 1 << 20

var cleanString = sanitizer.Compose(
	sanitizer.NormalizeUnicode,
	sanitizer.RemoveControlChars,
)

type jsonOptions struct {
	allowUnknownFields bool
	anyContentType     bool
}

// Option relaxes the checks made by JSON and JSONWithLimit.
type Option func(*jsonOptions)

// AllowUnknownFields ignores object keys that have no matching field.
func AllowUnknownFields() Option {
	return func(o *jsonOptions) {
		o.allowUnknownFields = true
	}
}

// AnyContentType decodes the body as JSON whatever the Content-Type header says.
func AnyContentType() Option {
	return func(o *jsonOptions) {
		o.anyContentType = true
	}
}

// JSON returns a binder that decodes the request body into v with the
// default size limit.
func JSON(opts ...Option) func(r *http.Request, v any) error {
	return JSONWithLimit(DefaultMaxJSONSize, opts...)
}

// JSONWithLimit is JSON with a custom body size limit in bytes.
func JSONWithLimit(maxBytes int64, opts ...Option) func(r *http.Request, v any) error {
	var o jsonOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if !o.anyContentType {
			contentType := r.Header.Get("Content-Type")
			if contentType == "" {
				return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
			}
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != "application/json" {
				return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
			}
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
		if err != nil {
			return fmt.Errorf("%w: reading body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > maxBytes {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxBytes)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		if !o.allowUnknownFields {
			dec.DisallowUnknownFields()
		}

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		cleanStrings(reflect.ValueOf(v))
		return nil
	}
}

// cleanStrings walks v and rewrites every settable string it reaches.
func cleanStrings(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			cleanStrings(rv.Elem())
		}
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(cleanString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if f := rv.Field(i); f.CanSet() {
				cleanStrings(f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			cleanStrings(rv.Index(i))
		}
	}
}
