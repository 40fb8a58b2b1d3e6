package outcome

import "log/slog"

// Options control notification and logging for one wrapped call.
type Options struct {
	ShowSuccessToast bool
	ShowErrorToast   bool
	SuccessMessage   string
	ErrorMessage     string
	LogErrors        bool
	Operation        string
	Field            string
	LogAttrs         []slog.Attr
}

// Option configures a single call.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		ShowErrorToast: true,
		LogErrors:      true,
	}
}

// WithSuccessToast shows message as a success notification.
func WithSuccessToast(message string) Option {
	return func(o *Options) {
		o.ShowSuccessToast = true
		o.SuccessMessage = message
	}
}

// WithErrorMessage sets the fallback shown when the catalog has no match.
func WithErrorMessage(message string) Option {
	return func(o *Options) {
		o.ErrorMessage = message
	}
}

func WithoutErrorToast() Option {
	return func(o *Options) {
		o.ShowErrorToast = false
	}
}

func WithoutErrorLog() Option {
	return func(o *Options) {
		o.LogErrors = false
	}
}

// WithOperation names the call in logs.
func WithOperation(name string) Option {
	return func(o *Options) {
		o.Operation = name
	}
}

// WithField names the input field a rejection points at.
func WithField(name string) Option {
	return func(o *Options) {
		o.Field = name
	}
}

// WithLogAttrs adds attrs to the failure log line. Callers pass masked values
// only, e.g. logger.Email.
func WithLogAttrs(attrs ...slog.Attr) Option {
	return func(o *Options) {
		o.LogAttrs = append(o.LogAttrs, attrs...)
	}
}
