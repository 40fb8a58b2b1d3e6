package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the notification kind.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Valid reports whether t is one of the known kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

// Notification is a delivered message as recorded by MemoryNotifier.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New stamps a notification with an id and creation time.
func New(t Type, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Type:      t,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
