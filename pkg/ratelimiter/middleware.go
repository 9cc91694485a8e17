package ratelimiter

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/certmailer/handler"
	"github.com/dmitrymomot/certmailer/pkg/clientip"
	"github.com/dmitrymomot/certmailer/pkg/logger"
)

// TooManyRequestsMessage is the client message for rejected requests.
const TooManyRequestsMessage = "Too many requests. Please try again later."

// KeyFunc extracts the bucket key from a request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by the client address, preferring the value
// stored by clientip.Middleware.
func ByClientIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.FromContext(r.Context()); ip != "" {
			return ip
		}
		return clientip.FromRequest(r)
	}
}

// Middleware rejects requests over the limit with 429 and a JSON
// {"error": ...} body and sets the X-RateLimit-* headers. Store failures
// let the request through and are logged.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("ratelimiter"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.WarnContext(r.Context(), "rate limit check failed", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := int(math.Ceil(res.RetryAfter().Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(1, retry)))
				log.WarnContext(r.Context(), "rate limit exceeded", slog.String("key", key))

				_ = handler.JSON(
					handler.ErrorBody{Error: TooManyRequestsMessage},
					handler.WithStatus(http.StatusTooManyRequests),
				).Render(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
