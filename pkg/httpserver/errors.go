package httpserver

import "errors"

var (
	ErrStart         = errors.New("httpserver.errors.start")
	ErrShutdown      = errors.New("httpserver.errors.shutdown")
	ErrInvalidConfig = errors.New("httpserver.errors.invalid_config")
)
