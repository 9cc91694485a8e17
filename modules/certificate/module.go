package certificate

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/certmailer/handler"
	"github.com/dmitrymomot/certmailer/pkg/binder"
	"github.com/dmitrymomot/certmailer/pkg/logger"
	"github.com/dmitrymomot/certmailer/pkg/ratelimiter"
	certsvc "github.com/dmitrymomot/certmailer/svc/certificate"
)

// DefaultMaxInFlight caps concurrent certificate requests.
const DefaultMaxInFlight = 16

//go:embed assets/form.html
var formHTML string

// Issuer runs the certificate pipeline for one submission.
type Issuer interface {
	Issue(ctx context.Context, req certsvc.Request) (certsvc.Result, error)
}

// Mountable is anything that exposes its routes as a single handler.
type Mountable interface {
	Handle() http.Handler
}

var _ Mountable = (*Module)(nil)

// Module serves the certificate form and its JSON endpoint.
type Module struct {
	issuer      Issuer
	log         *slog.Logger
	maxInFlight int
	maxBodySize int64
	limiter     ratelimiter.RateLimiter
}

type Option func(*Module)

func WithLogger(log *slog.Logger) Option {
	return func(m *Module) {
		if log != nil {
			m.log = log
		}
	}
}

// WithMaxInFlight limits concurrent generate requests. Requests over the
// limit are rejected with 503. Zero or less disables the limit.
func WithMaxInFlight(n int) Option {
	return func(m *Module) {
		m.maxInFlight = n
	}
}

// WithMaxBodySize overrides the JSON body limit in bytes.
func WithMaxBodySize(n int64) Option {
	return func(m *Module) {
		if n > 0 {
			m.maxBodySize = n
		}
	}
}

// WithRateLimiter limits generate requests per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(m *Module) {
		m.limiter = l
	}
}

// NewModule panics if issuer is nil.
func NewModule(issuer Issuer, opts ...Option) *Module {
	if issuer == nil {
		panic("certificate: issuer is required")
	}
	m := &Module{
		issuer:      issuer,
		log:         logger.Discard(),
		maxInFlight: DefaultMaxInFlight,
		maxBodySize: binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("certificate_http"))
	return m
}

// Handle returns the module router:
//
//	GET  /                  form page
//	POST /api/generate-cert certificate pipeline
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(m.form))

	r.Group(func(r chi.Router) {
		if m.limiter != nil {
			r.Use(ratelimiter.Middleware(m.limiter, ratelimiter.ByClientIP(), m.log))
		}
		if m.maxInFlight > 0 {
			r.Use(middleware.ThrottleWithOpts(middleware.ThrottleOpts{
				Limit:          m.maxInFlight,
				BacklogTimeout: time.Minute,
				StatusCode:     http.StatusServiceUnavailable,
			}))
		}
		r.Post("/api/generate-cert", handler.Wrap(m.generate,
			handler.WithBinder[handler.Context, certsvc.Request](binder.JSONWithLimit(m.maxBodySize, binder.AllowUnknownFields(), binder.AnyContentType())),
			handler.WithErrorHandler[handler.Context, certsvc.Request](handler.NewErrorHandler(m.log, certsvc.Classify)),
		))
	})

	return r
}

func (m *Module) form(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(templ.Raw(formHTML))
}

func (m *Module) generate(ctx handler.Context, req certsvc.Request) handler.Response {
	res, err := m.issuer.Issue(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(res)
}
