package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/certmailer/modules/certificate"
	"github.com/dmitrymomot/certmailer/pkg/clientip"
	"github.com/dmitrymomot/certmailer/pkg/config"
	"github.com/dmitrymomot/certmailer/pkg/email"
	"github.com/dmitrymomot/certmailer/pkg/environment"
	"github.com/dmitrymomot/certmailer/pkg/googleauth"
	"github.com/dmitrymomot/certmailer/pkg/httpserver"
	"github.com/dmitrymomot/certmailer/pkg/logger"
	"github.com/dmitrymomot/certmailer/pkg/ratelimiter"
	"github.com/dmitrymomot/certmailer/pkg/requestid"
	"github.com/dmitrymomot/certmailer/pkg/slides"
	certsvc "github.com/dmitrymomot/certmailer/svc/certificate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("certmailer stopped", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}

	env := environment.Parse(app.Env)
	logOpts := []logger.Option{
		logger.WithEnvironment(env, app.Name),
		logger.WithLevel(logger.ParseLevel(app.LogLevel)),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if app.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(app.LogFormat)))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	var (
		googleCfg googleauth.Config
		slidesCfg slides.Config
		mailCfg   email.Config
		certCfg   certsvc.Config
		httpCfg   httpserver.Config
		limitCfg  ratelimiter.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&googleCfg) },
		func() error { return config.Load(&slidesCfg) },
		func() error { return config.Load(&mailCfg) },
		func() error { return config.Load(&certCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&limitCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	google, err := googleauth.New(ctx, googleCfg)
	if err != nil {
		return err
	}

	docs, err := slides.NewGoogleService(ctx, google.Options()...)
	if err != nil {
		return err
	}
	generator := slides.NewGenerator(docs, slidesCfg, slides.WithLogger(log))

	sender, err := email.NewSender(ctx, mailCfg, log, google.Options()...)
	if err != nil {
		return err
	}

	moduleOpts := []certificate.Option{
		certificate.WithLogger(log),
		certificate.WithMaxInFlight(app.MaxInFlight),
	}
	if limitCfg.Enabled {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimiter.NewBucket(store, limitCfg)
		if err != nil {
			return err
		}
		moduleOpts = append(moduleOpts, certificate.WithRateLimiter(limiter))
	}

	svc := certsvc.NewService(generator, certsvc.NewMailer(sender, certCfg), certsvc.WithLogger(log))

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(env),
		middleware.RealIP,
		clientip.Middleware,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: app.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}),
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, google.Ping))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(app.RequestTimeout))
		r.Mount("/", certificate.NewModule(svc, moduleOpts...).Handle())
	})

	log.InfoContext(ctx, "starting certmailer",
		slog.String("env", env.String()),
		slog.String("mail_provider", string(mailCfg.Provider)),
	)

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
