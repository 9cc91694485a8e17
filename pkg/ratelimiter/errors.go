package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("ratelimiter.errors.invalid_config")
	ErrInvalidTokenCount = errors.New("ratelimiter.errors.invalid_token_count")
	ErrStoreClosed       = errors.New("ratelimiter.errors.store_closed")
)
