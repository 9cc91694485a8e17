package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/certmailer/pkg/logger"
)

// ErrorInfo is the client-facing rendering of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
}

// ErrorClassifier maps an error to its status code and client message.
type ErrorClassifier func(err error) ErrorInfo

// DefaultClassifier uses the status of any error in the chain implementing
// StatusCode() int and the error text as the message. Other errors become
// 500 with their own text.
func DefaultClassifier(err error) ErrorInfo {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		return ErrorInfo{StatusCode: sc.StatusCode(), Message: sc.(error).Error()}
	}
	return ErrorInfo{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler renders errors as {"error": message} JSON using classify
// and logs each one with the request method and path. A nil classify uses
// DefaultClassifier; a nil log discards records.
func NewErrorHandler(log *slog.Logger, classify ErrorClassifier) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	if classify == nil {
		classify = DefaultClassifier
	}

	return func(ctx Context, err error) {
		info := classify(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), logLevel(info.StatusCode), "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		resp := JSON(ErrorBody{Error: info.Message}, WithStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}
