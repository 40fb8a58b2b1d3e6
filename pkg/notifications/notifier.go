package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/choreboard/pkg/logger"
)

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, t Type, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, t Type, message string)

func (f NotifierFunc) Notify(ctx context.Context, t Type, message string) {
	f(ctx, t, message)
}

// NoOpNotifier discards every message.
type NoOpNotifier struct{}

func (NoOpNotifier) Notify(context.Context, Type, string) {}

// MultiNotifier fans a message out to several notifiers in order.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier skips nil entries.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	m := &MultiNotifier{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

func (m *MultiNotifier) Notify(ctx context.Context, t Type, message string) {
	for _, n := range m.notifiers {
		n.Notify(ctx, t, message)
	}
}

// LogNotifier writes notifications to a logger. Useful for CLIs and services
// without a presentation layer.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, t Type, message string) {
	level := slog.LevelInfo
	switch t {
	case TypeError:
		level = slog.LevelError
	case TypeWarning:
		level = slog.LevelWarn
	}
	n.logger.LogAttrs(ctx, level, message,
		logger.Component("notifications"),
		slog.String("notification_type", string(t)),
	)
}
