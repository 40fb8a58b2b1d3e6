// Package config loads typed configuration from environment variables.
//
// Load parses a struct with github.com/caarlos0/env/v11, then validates it
// with github.com/go-playground/validator/v10 `validate` tags, and caches the
// result per type for the life of the process. The default .env file is read
// once via github.com/joho/godotenv before the first parse if it exists;
// LoadEnv reads additional files explicitly.
//
//	type Config struct {
//	    Service string `env:"SERVICE_NAME" envDefault:"choreboard" validate:"required"`
//	    Level   string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig) or config.ErrInvalidConfig
//	}
//
// ResetCache clears cached values so tests can load the same type with
// different environments.
package config
