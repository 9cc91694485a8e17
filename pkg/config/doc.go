// Package config loads process configuration from environment variables into
// typed structs.
//
// It combines github.com/joho/godotenv for optional .env files with
// github.com/caarlos0/env/v11 for struct-tag parsing. Every configuration type
// is parsed at most once per process and cached, so packages can call Load for
// their own struct without coordinating with each other.
//
// # Usage
//
//	type Config struct {
//		TemplateID  string        `env:"GOOGLE_SLIDES_TEMPLATE_ID,required"`
//		CallTimeout time.Duration `env:"SLIDES_CALL_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Structs that implement Validator are checked after parsing; a failing check
// is reported as ErrInvalidConfig and the value is not cached.
//
// Tests that mutate the environment should call Reset before Load so the
// fresh values are picked up.
package config
