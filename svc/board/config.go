package board

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/choreboard/pkg/environment"
	"github.com/dmitrymomot/choreboard/pkg/forms"
	"github.com/dmitrymomot/choreboard/pkg/logger"
)

// Password policies accepted by PASSWORD_POLICY.
const (
	PolicyAuto    = "auto"
	PolicyStrict  = "strict"
	PolicyLenient = "lenient"
)

// Config is loaded with config.Load.
type Config struct {
	AppEnv         string `env:"APP_ENV" envDefault:"development" validate:"oneof=development dev local test testing ci staging stage production prod"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"choreboard" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"" validate:"omitempty,oneof=json text"`
	PasswordPolicy string `env:"PASSWORD_POLICY" envDefault:"auto" validate:"oneof=auto strict lenient"`
	AllowTestIDs   bool   `env:"ALLOW_TEST_IDS" envDefault:"false"`
}

// Environment parses AppEnv. Unknown values resolve to Development.
func (c Config) Environment() environment.Environment {
	env, err := environment.Parse(c.AppEnv)
	if err != nil {
		return environment.Development
	}
	return env
}

// LenientPasswords resolves PasswordPolicy. "auto" is lenient only in the
// test environment.
func (c Config) LenientPasswords() bool {
	switch strings.ToLower(c.PasswordPolicy) {
	case PolicyLenient:
		return true
	case PolicyStrict:
		return false
	default:
		return c.Environment() == environment.Test
	}
}

// FormOptions translates the config into forms.Set options.
func (c Config) FormOptions() []forms.Option {
	var opts []forms.Option
	if c.LenientPasswords() {
		opts = append(opts, forms.WithLenientPasswords())
	}
	if c.AllowTestIDs {
		opts = append(opts, forms.WithTestIDs())
	}
	return opts
}

// LoggerOptions returns environment defaults overridden by LOG_LEVEL and
// LOG_FORMAT when set.
func (c Config) LoggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Environment(), c.ServiceName),
		logger.WithContextExtractors(
			environment.LoggerExtractor(),
			logger.OperationExtractor(),
		),
	}
	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("board config: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if c.LogFormat != "" {
		format, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("board config: %w", err)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return opts, nil
}

// Logger builds a logger writing to w. Invalid overrides fall back to the
// environment defaults.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts, err := c.LoggerOptions()
	if err != nil {
		opts = []logger.Option{logger.WithEnvironment(c.Environment(), c.ServiceName)}
	}
	return logger.New(append(opts, logger.WithOutput(w))...)
}
