package board

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/choreboard/pkg/backend"
	"github.com/dmitrymomot/choreboard/pkg/environment"
	"github.com/dmitrymomot/choreboard/pkg/forms"
	"github.com/dmitrymomot/choreboard/pkg/logger"
	"github.com/dmitrymomot/choreboard/pkg/notifications"
	"github.com/dmitrymomot/choreboard/pkg/outcome"
	"github.com/dmitrymomot/choreboard/pkg/schema"
)

// Service exposes every ChoreBoard user operation. It is safe for concurrent use.
type Service struct {
	client  backend.Client
	forms   *forms.Set
	wrapper *outcome.Wrapper
	env     environment.Environment
}

type serviceOptions struct {
	config   *Config
	forms    *forms.Set
	notifier notifications.Notifier
	logger   *slog.Logger
	catalog  *outcome.Catalog
}

// Option configures a Service.
type Option func(*serviceOptions)

// WithConfig derives the form set and environment from cfg. An explicit
// WithForms takes precedence over the form options.
func WithConfig(cfg Config) Option {
	return func(o *serviceOptions) {
		o.config = &cfg
	}
}

func WithForms(set *forms.Set) Option {
	return func(o *serviceOptions) {
		o.forms = set
	}
}

func WithNotifier(n notifications.Notifier) Option {
	return func(o *serviceOptions) {
		o.notifier = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *serviceOptions) {
		o.logger = l
	}
}

// WithCatalog replaces the built-in error message catalog.
func WithCatalog(c *outcome.Catalog) Option {
	return func(o *serviceOptions) {
		o.catalog = c
	}
}

// New creates a Service. Without options it uses strict forms, no
// notifications and slog.Default.
func New(client backend.Client, opts ...Option) *Service {
	o := serviceOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Service{client: client, forms: o.forms}
	if o.config != nil {
		s.env = o.config.Environment()
		if s.forms == nil {
			s.forms = forms.New(o.config.FormOptions()...)
		}
	}
	if s.forms == nil {
		s.forms = forms.New()
	}

	s.wrapper = outcome.NewWrapper(
		outcome.WithNotifier(o.notifier),
		outcome.WithLogger(o.logger),
		outcome.WithCatalog(o.catalog),
	)
	return s
}

// Forms returns the schema set used to validate input.
func (s *Service) Forms() *forms.Set {
	return s.forms
}

// Session returns the signed in user's id, or "" when nobody is signed in.
func (s *Service) Session(ctx context.Context) (string, error) {
	sess, err := s.client.CurrentSession(ctx)
	if err != nil || sess == nil {
		return "", err
	}
	return sess.UserID, nil
}

func (s *Service) scope(ctx context.Context, op string) context.Context {
	ctx = logger.WithOperation(ctx, op)
	if s.env != "" {
		ctx = environment.WithContext(ctx, s.env)
	}
	return ctx
}

// validate scopes ctx to op and checks raw against sc. The returned options
// name the operation and carry the rejected field or the masked identity of
// the caller.
func validate[In any](
	ctx context.Context,
	s *Service,
	op string,
	sc schema.Schema[In],
	raw any,
	opts []outcome.Option,
) (context.Context, schema.Result[In], []outcome.Option) {
	ctx = s.scope(ctx, op)
	opts = append(opts, outcome.WithOperation(op))

	res := schema.Validate(sc, raw)
	if !res.Success {
		return ctx, res, append(opts, outcome.WithField(res.Field))
	}
	return ctx, res, append(opts, outcome.WithLogAttrs(identity(res.Data)...))
}

// identity returns log attrs for inputs that name a person. Addresses are masked.
func identity(in any) []slog.Attr {
	switch v := in.(type) {
	case forms.SignUpInput:
		return []slog.Attr{logger.Email(v.Email)}
	case forms.SignInInput:
		return []slog.Attr{logger.Email(v.Email)}
	case forms.ForgotPasswordInput:
		return []slog.Attr{logger.Email(v.Email)}
	case forms.AddMemberInput:
		return []slog.Attr{logger.Email(v.Email)}
	}
	return nil
}

// run validates raw and, only when it passes, wraps call.
func run[In, Out any](
	ctx context.Context,
	s *Service,
	op string,
	sc schema.Schema[In],
	raw any,
	call func(ctx context.Context, in In) (Out, error),
	opts ...outcome.Option,
) outcome.Outcome[Out] {
	ctx, res, opts := validate(ctx, s, op, sc, raw, opts)
	if !res.Success {
		return outcome.Reject[Out](ctx, s.wrapper, res.Error, opts...)
	}
	return outcome.Wrap(ctx, s.wrapper, func(ctx context.Context) (Out, error) {
		return call(ctx, res.Data)
	}, opts...)
}

// runAsUser is run for operations acting on behalf of the signed in user.
// Validation happens before the session lookup.
func runAsUser[In, Out any](
	ctx context.Context,
	s *Service,
	op string,
	sc schema.Schema[In],
	raw any,
	call func(ctx context.Context, userID string, in In) (Out, error),
	opts ...outcome.Option,
) outcome.Outcome[Out] {
	ctx, res, opts := validate(ctx, s, op, sc, raw, opts)
	if !res.Success {
		return outcome.Reject[Out](ctx, s.wrapper, res.Error, opts...)
	}
	return outcome.WrapWithSession(ctx, s.wrapper, s.Session, func(ctx context.Context, userID string) (Out, error) {
		return call(ctx, userID, res.Data)
	}, opts...)
}

func done[In any](call func(ctx context.Context, userID string, in In) error) func(context.Context, string, In) (struct{}, error) {
	return func(ctx context.Context, userID string, in In) (struct{}, error) {
		return struct{}{}, call(ctx, userID, in)
	}
}
