package forms

import (
	"github.com/dmitrymomot/choreboard/pkg/schema"
	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// Priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Status values.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Member roles.
const (
	RoleViewer = "viewer"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Roles lists every assignable member role.
var Roles = []string{RoleViewer, RoleMember, RoleAdmin}

var (
	priorityEnum = schema.NewEnum("priority", PriorityMedium, map[string][]string{
		PriorityLow:    {"l", "1", "lo", "minor"},
		PriorityMedium: {"m", "2", "med", "mid", "normal"},
		PriorityHigh:   {"h", "3", "hi", "urgent"},
	})

	statusEnum = schema.NewEnum("status", StatusPending, map[string][]string{
		StatusPending:    {"todo", "to do", "open", "new", "not started", "backlog"},
		StatusInProgress: {"in progress", "doing", "started", "active", "wip", "progress"},
		StatusCompleted:  {"done", "complete", "finished", "closed", "resolved"},
	})
)

// Priority normalizes to low, medium or high. Unknown input becomes medium.
func Priority() *schema.Enum { return priorityEnum }

// Status normalizes to pending, in_progress or completed. Unknown input becomes pending.
func Status() *schema.Enum { return statusEnum }

// NormalizePriority is Priority().Normalize.
func NormalizePriority(raw any) string { return priorityEnum.Normalize(raw) }

// NormalizeStatus is Status().Normalize.
func NormalizeStatus(raw any) string { return statusEnum.Normalize(raw) }

// Role is a strict enum: unlike priority and status, unknown roles are rejected.
func Role() *schema.String {
	return schema.NewString("role", "Role").
		Trim().
		Lower().
		Required().
		Rule(func(field, value string) validator.Rule {
			return validator.InListString(field, value, Roles)
		})
}
