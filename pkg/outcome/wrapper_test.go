package outcome_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/choreboard/pkg/logger"
	"github.com/dmitrymomot/choreboard/pkg/notifications"
	"github.com/dmitrymomot/choreboard/pkg/outcome"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, t notifications.Type, message string) {
	m.Called(ctx, t, message)
}

type harness struct {
	wrapper  *outcome.Wrapper
	notifier *notifications.MemoryNotifier
	logs     *bytes.Buffer
}

func newHarness() harness {
	logs := &bytes.Buffer{}
	mem := notifications.NewMemoryNotifier()
	log := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return harness{
		wrapper:  outcome.NewWrapper(outcome.WithNotifier(mem), outcome.WithLogger(log)),
		notifier: mem,
		logs:     logs,
	}
}

func (h harness) logLines() int {
	return strings.Count(h.logs.String(), "\n")
}

func TestWrapSuccess(t *testing.T) {
	t.Parallel()

	h := newHarness()
	ctx := context.Background()

	out := outcome.Wrap(ctx, h.wrapper, func(context.Context) (int, error) { return 7, nil })
	assert.True(t, out.Success)
	assert.Equal(t, 7, out.Data)
	assert.NoError(t, out.Err)
	assert.Zero(t, h.notifier.Count(), "no success toast unless configured")

	out = outcome.Wrap(ctx, h.wrapper, func(context.Context) (int, error) { return 8, nil },
		outcome.WithSuccessToast("Saved"))
	require.True(t, out.Success)
	assert.Equal(t, "Saved", out.Message)

	last, ok := h.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, notifications.TypeSuccess, last.Type)
	assert.Equal(t, "Saved", last.Message)
	assert.Zero(t, h.logLines())
}

func TestWrapNativeError(t *testing.T) {
	t.Parallel()

	h := newHarness()
	native := errors.New("Invalid login credentials")

	out := outcome.Wrap(context.Background(), h.wrapper, func(context.Context) (string, error) {
		return "ignored", native
	}, outcome.WithErrorMessage("Sign in failed"), outcome.WithOperation("sign_in"))

	assert.False(t, out.Success)
	assert.Empty(t, out.Data)
	require.ErrorIs(t, out.Err, native)
	assert.Equal(t, "Invalid email or password. Please try again.", out.Message)

	require.Equal(t, 1, h.notifier.Count())
	last, _ := h.notifier.Last()
	assert.Equal(t, notifications.TypeError, last.Type)
	assert.Equal(t, out.Message, last.Message)

	assert.Equal(t, 1, h.logLines())
	assert.Contains(t, h.logs.String(), "operation=sign_in")
	assert.Contains(t, h.logs.String(), "level=ERROR")
}

func TestWrapFallbackMessages(t *testing.T) {
	t.Parallel()

	h := newHarness()
	ctx := context.Background()
	unknown := func(context.Context) (int, error) { return 0, errors.New("socket closed") }

	out := outcome.Wrap(ctx, h.wrapper, unknown, outcome.WithErrorMessage("Could not create task"))
	assert.Equal(t, "Could not create task", out.Message)

	out = outcome.Wrap(ctx, h.wrapper, unknown)
	assert.Equal(t, outcome.GenericErrorMessage, out.Message)

	custom := outcome.NewWrapper(outcome.WithGenericErrorMessage("Oops"))
	out = outcome.Wrap(ctx, custom, unknown, outcome.WithoutErrorLog())
	assert.Equal(t, "Oops", out.Message)
}

func TestWrapPanic(t *testing.T) {
	t.Parallel()

	h := newHarness()

	var out outcome.Outcome[int]
	require.NotPanics(t, func() {
		out = outcome.Wrap(context.Background(), h.wrapper, func(context.Context) (int, error) {
			panic("network down")
		}, outcome.WithErrorMessage("Could not load"))
	})

	assert.False(t, out.Success)
	require.ErrorIs(t, out.Err, outcome.ErrPanic)
	assert.Equal(t, "Could not load", out.Message)
	assert.Equal(t, 1, h.notifier.Count())
	assert.Equal(t, 1, h.logLines())

	nilOp := outcome.Wrap[int](context.Background(), h.wrapper, nil)
	require.ErrorIs(t, nilOp.Err, outcome.ErrPanic)
}

func TestWrapQuietOptions(t *testing.T) {
	t.Parallel()

	h := newHarness()
	out := outcome.Wrap(context.Background(), h.wrapper, func(context.Context) (int, error) {
		return 0, errors.New("boom")
	}, outcome.WithoutErrorToast(), outcome.WithoutErrorLog())

	assert.False(t, out.Success)
	assert.Zero(t, h.notifier.Count())
	assert.Zero(t, h.logLines())
}

func TestWrapTotality(t *testing.T) {
	t.Parallel()

	h := newHarness()
	ops := []func(context.Context) (string, error){
		func(context.Context) (string, error) { return "ok", nil },
		func(context.Context) (string, error) { return "", errors.New("duplicate key value violates unique constraint") },
		func(context.Context) (string, error) { panic(errors.New("thrown")) },
		func(context.Context) (string, error) { var m map[string]int; m["x"] = 1; return "", nil },
	}

	for i, op := range ops {
		out := outcome.Wrap(context.Background(), h.wrapper, op)
		if out.Success {
			assert.NoError(t, out.Err, i)
		} else {
			assert.Error(t, out.Err, i)
			assert.NotEmpty(t, out.Message, i)
		}
	}
	// Three failures, each with exactly one notification and one log line.
	assert.Equal(t, 3, h.notifier.Count())
	assert.Equal(t, 3, h.logLines())
}

func TestWrapSignOut(t *testing.T) {
	t.Parallel()

	t.Run("missing session counts as signed out", func(t *testing.T) {
		t.Parallel()

		n := &mockNotifier{}
		n.On("Notify", mock.Anything, notifications.TypeSuccess, "You have been signed out").Once()
		w := outcome.NewWrapper(outcome.WithNotifier(n))

		out := outcome.WrapSignOut(context.Background(), w, func(context.Context) error {
			return errors.New("Auth session missing!")
		}, outcome.WithSuccessToast("You have been signed out"))

		assert.True(t, out.Success)
		assert.NoError(t, out.Err)
		assert.Equal(t, struct{}{}, out.Data)
		n.AssertExpectations(t)
	})

	t.Run("other errors still fail", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		out := outcome.WrapSignOut(context.Background(), h.wrapper, func(context.Context) error {
			return errors.New("Failed to fetch")
		}, outcome.WithSuccessToast("You have been signed out"))

		assert.False(t, out.Success)
		assert.Equal(t, "Network error. Please check your connection and try again.", out.Message)
		assert.Empty(t, h.notifier.ByType(notifications.TypeSuccess))
	})

	t.Run("plain success", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		out := outcome.WrapSignOut(context.Background(), h.wrapper, func(context.Context) error { return nil })
		assert.True(t, out.Success)
	})
}

func TestWrapBool(t *testing.T) {
	t.Parallel()

	h := newHarness()
	ctx := context.Background()

	assert.True(t, outcome.WrapBool(ctx, h.wrapper, func(context.Context) error { return nil }))
	assert.False(t, outcome.WrapBool(ctx, h.wrapper, func(context.Context) error { return errors.New("nope") }))
	assert.False(t, outcome.WrapBool(ctx, h.wrapper, nil))
}

func TestWrapWithSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no session never calls the operation", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		calls := 0
		out := outcome.WrapWithSession(ctx, h.wrapper,
			func(context.Context) (string, error) { return "", nil },
			func(context.Context, string) (int, error) { calls++; return 1, nil },
			outcome.WithErrorMessage("Could not save"))

		assert.Zero(t, calls)
		assert.False(t, out.Success)
		require.ErrorIs(t, out.Err, outcome.ErrNotSignedIn)
		assert.Equal(t, outcome.SignInMessage, out.Message)
		last, _ := h.notifier.Last()
		assert.Equal(t, outcome.SignInMessage, last.Message)
	})

	t.Run("session lookup error", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		lookup := errors.New("storage unavailable")
		calls := 0
		out := outcome.WrapWithSession(ctx, h.wrapper,
			func(context.Context) (string, error) { return "", lookup },
			func(context.Context, string) (int, error) { calls++; return 1, nil })

		assert.Zero(t, calls)
		require.ErrorIs(t, out.Err, outcome.ErrNotSignedIn)
		require.ErrorIs(t, out.Err, lookup)
		assert.Equal(t, outcome.SignInMessage, out.Message)
		assert.Equal(t, 1, h.logLines())
	})

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		out := outcome.WrapWithSession(ctx, h.wrapper,
			func(context.Context) (string, error) { return "user-1", nil },
			func(_ context.Context, userID string) (string, error) { return "hello " + userID, nil })

		require.True(t, out.Success)
		assert.Equal(t, "hello user-1", out.Data)
	})

	t.Run("nil session source", func(t *testing.T) {
		t.Parallel()

		h := newHarness()
		out := outcome.WrapWithSession(ctx, h.wrapper, nil,
			func(context.Context, string) (int, error) { return 1, nil })
		require.ErrorIs(t, out.Err, outcome.ErrNotSignedIn)
	})
}

func TestWrapWithSessionLogsUserID(t *testing.T) {
	t.Parallel()

	h := newHarness()
	out := outcome.WrapWithSession(context.Background(), h.wrapper,
		func(context.Context) (string, error) { return "user-1", nil },
		func(context.Context, string) (int, error) { return 0, errors.New("Task not found") },
		outcome.WithOperation("update_task"))

	require.False(t, out.Success)
	assert.Equal(t, 1, h.logLines())
	assert.Contains(t, h.logs.String(), "user_id=user-1")
	assert.Contains(t, h.logs.String(), "operation=update_task")
}

func TestWrapBoolWithSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	signedIn := func(context.Context) (string, error) { return "user-1", nil }
	signedOut := func(context.Context) (string, error) { return "", nil }

	h := newHarness()
	var seen string
	assert.True(t, outcome.WrapBoolWithSession(ctx, h.wrapper, signedIn,
		func(_ context.Context, userID string) error { seen = userID; return nil }))
	assert.Equal(t, "user-1", seen)

	assert.False(t, outcome.WrapBoolWithSession(ctx, h.wrapper, signedIn,
		func(context.Context, string) error { return errors.New("nope") }))
	assert.False(t, outcome.WrapBoolWithSession(ctx, h.wrapper, signedIn, nil))

	calls := 0
	assert.False(t, outcome.WrapBoolWithSession(ctx, h.wrapper, signedOut,
		func(context.Context, string) error { calls++; return nil }))
	assert.Zero(t, calls)
	last, _ := h.notifier.Last()
	assert.Equal(t, outcome.SignInMessage, last.Message)
}

func TestReject(t *testing.T) {
	t.Parallel()

	h := newHarness()
	out := outcome.Reject[int](context.Background(), h.wrapper, "Password is required", outcome.WithOperation("sign_in"))

	assert.False(t, out.Success)
	require.ErrorIs(t, out.Err, outcome.ErrValidation)
	assert.Equal(t, "Password is required", out.Message)

	require.Equal(t, 1, h.notifier.Count())
	last, _ := h.notifier.Last()
	assert.Equal(t, notifications.TypeError, last.Type)
	assert.Equal(t, "Password is required", last.Message)

	assert.Equal(t, 1, h.logLines())
	assert.Contains(t, h.logs.String(), "level=DEBUG")
}

func TestRejectLogsFieldAndAttrs(t *testing.T) {
	t.Parallel()

	h := newHarness()
	outcome.Reject[int](context.Background(), h.wrapper, "Password is required",
		outcome.WithOperation("sign_in"),
		outcome.WithField("password"),
		outcome.WithLogAttrs(logger.Email("john.doe@example.com")))

	line := h.logs.String()
	assert.Contains(t, line, "field=password")
	assert.Contains(t, line, "email=j*******@example.com")
	assert.NotContains(t, line, "john.doe@example.com")
}

func TestFailureLogCarriesAttrs(t *testing.T) {
	t.Parallel()

	h := newHarness()
	out := outcome.Wrap(context.Background(), h.wrapper, func(context.Context) (int, error) {
		return 0, errors.New("User already registered")
	}, outcome.WithLogAttrs(logger.Email("john.doe@example.com")))

	require.False(t, out.Success)
	line := h.logs.String()
	assert.Contains(t, line, "email=j*******@example.com")
	assert.NotContains(t, line, "john.doe@example.com")
	assert.NotContains(t, line, "field=", "no field attr unless set")
}

func TestIsSessionMissing(t *testing.T) {
	t.Parallel()

	assert.True(t, outcome.IsSessionMissing(errors.New("Auth session missing!")))
	assert.True(t, outcome.IsSessionMissing(errors.Join(errors.New("sign out"), errors.New("auth session missing"))))
	assert.False(t, outcome.IsSessionMissing(errors.New("session expired")))
	assert.False(t, outcome.IsSessionMissing(nil))
}
