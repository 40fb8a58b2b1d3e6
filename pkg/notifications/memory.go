package notifications

import (
	"context"
	"slices"
	"sync"
)

// MemoryNotifier records notifications in memory. Suitable for development and testing.
type MemoryNotifier struct {
	mu            sync.RWMutex
	notifications []Notification
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (m *MemoryNotifier) Notify(_ context.Context, t Type, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, New(t, message))
}

// All returns a copy of every recorded notification, oldest first.
func (m *MemoryNotifier) All() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.notifications)
}

// ByType returns the recorded notifications of kind t.
func (m *MemoryNotifier) ByType(t Type) []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Notification
	for _, n := range m.notifications {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// Last returns the most recent notification.
func (m *MemoryNotifier) Last() (Notification, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.notifications) == 0 {
		return Notification{}, false
	}
	return m.notifications[len(m.notifications)-1], true
}

func (m *MemoryNotifier) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.notifications)
}

func (m *MemoryNotifier) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = nil
}
