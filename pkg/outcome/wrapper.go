package outcome

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/choreboard/pkg/logger"
	"github.com/dmitrymomot/choreboard/pkg/notifications"
)

// Outcome is the normalized result of a wrapped operation. Message is the
// text shown to the user, if any.
type Outcome[T any] struct {
	Data    T
	Err     error
	Success bool
	Message string
}

// Wrapper holds the collaborators shared by every wrapped call.
type Wrapper struct {
	notifier     notifications.Notifier
	logger       *slog.Logger
	catalog      *Catalog
	genericError string
}

// WrapperOption configures a Wrapper.
type WrapperOption func(*Wrapper)

func WithNotifier(n notifications.Notifier) WrapperOption {
	return func(w *Wrapper) {
		if n != nil {
			w.notifier = n
		}
	}
}

func WithLogger(l *slog.Logger) WrapperOption {
	return func(w *Wrapper) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithCatalog replaces the built-in message catalog.
func WithCatalog(c *Catalog) WrapperOption {
	return func(w *Wrapper) {
		if c != nil {
			w.catalog = c
		}
	}
}

// WithGenericErrorMessage sets the message used when neither the catalog nor
// the call provides one.
func WithGenericErrorMessage(message string) WrapperOption {
	return func(w *Wrapper) {
		if message != "" {
			w.genericError = message
		}
	}
}

// NewWrapper defaults to no notifications, slog.Default and DefaultCatalog.
func NewWrapper(opts ...WrapperOption) *Wrapper {
	w := &Wrapper{
		notifier:     notifications.NoOpNotifier{},
		logger:       slog.Default(),
		catalog:      DefaultCatalog(),
		genericError: GenericErrorMessage,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Wrap runs op and normalizes its result. It never panics and always returns.
func Wrap[T any](ctx context.Context, w *Wrapper, op func(context.Context) (T, error), opts ...Option) Outcome[T] {
	o := resolve(opts)

	data, err := call(ctx, op)
	if err != nil {
		msg := w.fail(ctx, o, err, "")
		return Outcome[T]{Err: err, Message: msg}
	}

	return Outcome[T]{Data: data, Success: true, Message: w.succeed(ctx, o)}
}

// WrapBool runs op and reports only success.
func WrapBool(ctx context.Context, w *Wrapper, op func(context.Context) error, opts ...Option) bool {
	return Wrap(ctx, w, discard(op), opts...).Success
}

// WrapSignOut runs a sign out. A missing session is reported as success,
// with the success notification still shown. No other error is reclassified.
func WrapSignOut(ctx context.Context, w *Wrapper, op func(context.Context) error, opts ...Option) Outcome[struct{}] {
	o := resolve(opts)

	_, err := call(ctx, discard(op))
	if err != nil && !IsSessionMissing(err) {
		msg := w.fail(ctx, o, err, "")
		return Outcome[struct{}]{Err: err, Message: msg}
	}

	return Outcome[struct{}]{Success: true, Message: w.succeed(ctx, o)}
}

// SessionFunc returns the signed in user's id, or "" when nobody is signed in.
type SessionFunc func(ctx context.Context) (string, error)

// WrapWithSession resolves the session before calling op. Without a session,
// or when the lookup fails, op is never called and the outcome carries
// ErrNotSignedIn with SignInMessage.
func WrapWithSession[T any](ctx context.Context, w *Wrapper, session SessionFunc, op func(ctx context.Context, userID string) (T, error), opts ...Option) Outcome[T] {
	o := resolve(opts)

	userID, err := callSession(ctx, session)
	if err != nil || userID == "" {
		cause := ErrNotSignedIn
		if err != nil {
			cause = errors.Join(ErrNotSignedIn, err)
		}
		msg := w.fail(ctx, o, cause, SignInMessage)
		return Outcome[T]{Err: cause, Message: msg}
	}

	return Wrap(ctx, w, func(ctx context.Context) (T, error) {
		return op(ctx, userID)
	}, append(opts[:len(opts):len(opts)], WithLogAttrs(logger.UserID(userID)))...)
}

// WrapBoolWithSession is WrapWithSession reporting only success.
func WrapBoolWithSession(ctx context.Context, w *Wrapper, session SessionFunc, op func(ctx context.Context, userID string) error, opts ...Option) bool {
	return WrapWithSession(ctx, w, session, func(ctx context.Context, userID string) (struct{}, error) {
		if op == nil {
			panic("nil operation")
		}
		return struct{}{}, op(ctx, userID)
	}, opts...).Success
}

// Reject reports input that failed validation. Nothing remote is called;
// message is shown as is and logged at debug level.
func Reject[T any](ctx context.Context, w *Wrapper, message string, opts ...Option) Outcome[T] {
	o := resolve(opts)
	err := fmt.Errorf("%w: %s", ErrValidation, message)

	if o.LogErrors {
		attrs := append([]slog.Attr{
			logger.Component("outcome"),
			logger.Operation(o.Operation),
			logger.Field(o.Field),
			slog.String("reason", message),
		}, o.LogAttrs...)
		w.logger.LogAttrs(ctx, slog.LevelDebug, "input rejected", attrs...)
	}
	if o.ShowErrorToast {
		w.notifier.Notify(ctx, notifications.TypeError, message)
	}
	return Outcome[T]{Err: err, Message: message}
}

// IsSessionMissing reports whether err is the backend's "Auth session missing" error.
func IsSessionMissing(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "auth session missing")
}

// Message picks the user facing text for err: the catalog match, then
// fallback, then the wrapper's generic message.
func (w *Wrapper) Message(err error, fallback string) string {
	if err != nil {
		if msg, ok := w.catalog.Lookup(err.Error()); ok {
			return msg
		}
	}
	if fallback != "" {
		return fallback
	}
	return w.genericError
}

func (w *Wrapper) fail(ctx context.Context, o Options, err error, fixed string) string {
	msg := fixed
	if msg == "" {
		msg = w.Message(err, o.ErrorMessage)
	}

	if o.LogErrors {
		attrs := append([]slog.Attr{
			logger.Component("outcome"),
			logger.Operation(o.Operation),
			logger.Error(err),
		}, o.LogAttrs...)
		w.logger.LogAttrs(ctx, slog.LevelError, "operation failed", attrs...)
	}
	if o.ShowErrorToast {
		w.notifier.Notify(ctx, notifications.TypeError, msg)
	}
	return msg
}

func (w *Wrapper) succeed(ctx context.Context, o Options) string {
	if o.ShowSuccessToast && o.SuccessMessage != "" {
		w.notifier.Notify(ctx, notifications.TypeSuccess, o.SuccessMessage)
		return o.SuccessMessage
	}
	return ""
}

func resolve(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func call[T any](ctx context.Context, op func(context.Context) (T, error)) (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			data, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	if op == nil {
		return data, fmt.Errorf("%w: nil operation", ErrPanic)
	}
	return op(ctx)
}

func callSession(ctx context.Context, session SessionFunc) (string, error) {
	if session == nil {
		return "", nil
	}
	return call(ctx, func(ctx context.Context) (string, error) {
		return session(ctx)
	})
}

func discard(op func(context.Context) error) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		if op == nil {
			panic("nil operation")
		}
		return struct{}{}, op(ctx)
	}
}
