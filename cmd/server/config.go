package main

import (
	"errors"
	"time"

	"github.com/dmitrymomot/certmailer/pkg/logger"
)

type appConfig struct {
	Name               string        `env:"APP_NAME" envDefault:"certmailer"`
	Env                string        `env:"APP_ENV" envDefault:"development"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxInFlight        int           `env:"CERT_MAX_IN_FLIGHT" envDefault:"16"`
	RequestTimeout     time.Duration `env:"CERT_REQUEST_TIMEOUT" envDefault:"150s"`
}

func (c *appConfig) Validate() error {
	var errs []error
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		errs = append(errs, errors.New("LOG_FORMAT must be json or text"))
	}
	if c.MaxInFlight < 0 {
		errs = append(errs, errors.New("CERT_MAX_IN_FLIGHT must not be negative"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("CERT_REQUEST_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
