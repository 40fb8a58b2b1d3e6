package forms

import (
	"regexp"
	"time"

	"github.com/dmitrymomot/choreboard/pkg/sanitizer"
	"github.com/dmitrymomot/choreboard/pkg/schema"
	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// Length bounds.
const (
	NameMaxLength        = 50
	EmailMaxLength       = 254
	PasswordMinLength    = 8
	PasswordMaxLength    = 128
	TaskTitleMaxLength   = 100
	ProjectNameMaxLength = 50
	ColumnNameMaxLength  = 50
	DescriptionMaxLength = 500
	SearchQueryMaxLength = 100
	DueDateMaxYears      = 2
)

var (
	personNameRegex = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	titleRegex      = regexp.MustCompile(`^[A-Za-z0-9\s\-_.]+$`)
)

const (
	personNameCharsMessage = "may only contain letters, spaces, apostrophes and hyphens"
	titleCharsMessage      = "may only contain letters, numbers, spaces, hyphens, underscores and periods"
)

// Name validates a person name. The character class is checked before
// sanitizing, so markup is rejected rather than silently stripped.
func Name(field, label string) *schema.String {
	return schema.NewString(field, label).
		Trim().
		Required().
		Max(NameMaxLength).
		Match(personNameRegex, personNameCharsMessage).
		Sanitize().
		CollapseWhitespace()
}

// Email lowercases and validates the address before and after sanitizing.
func Email(field, label string) *schema.String {
	return schema.NewString(field, label).
		Trim().
		Lower().
		Required().
		Max(EmailMaxLength).
		Rule(validator.ValidEmail).
		Sanitize().
		Rule(validator.ValidEmail)
}

// Password validates a new password against cfg. The minimum length is checked
// again after sanitizing so stripped markers cannot shorten it below the bound.
func Password(field, label string, cfg validator.PasswordStrengthConfig) *schema.String {
	return schema.NewString(field, label).
		Required().
		Min(cfg.MinLength).
		Max(cfg.MaxLength).
		Sanitize().
		Rules(func(field, value string) []validator.Rule {
			return validator.PasswordRules(field, value, cfg)
		})
}

// ExistingPassword is used where a stored password is presented back, e.g. at
// sign in. Strength rules are not applied; the transform matches Password so
// the same input sanitizes to the same secret.
func ExistingPassword(field, label string) *schema.String {
	return schema.NewString(field, label).
		Required().
		Max(PasswordMaxLength).
		Sanitize().
		Required()
}

// Title builds a single-line title or name field with the title character class.
func Title(field, label string, maxLen int) *schema.String {
	return schema.NewString(field, label).
		Trim().
		Required().
		Max(maxLen).
		Match(titleRegex, titleCharsMessage).
		Sanitize().
		CollapseWhitespace()
}

func TaskTitle() *schema.String {
	return Title("title", "Task title", TaskTitleMaxLength)
}

func ProjectName() *schema.String {
	return Title("name", "Project name", ProjectNameMaxLength)
}

func ColumnName() *schema.String {
	return Title("name", "Column name", ColumnNameMaxLength)
}

// Description is optional free text; markup is stripped, not rejected.
func Description() *schema.String {
	return schema.NewString("description", "Description").
		Trim().
		Max(DescriptionMaxLength).
		Sanitize().
		CollapseWhitespace().
		Optional()
}

// ID accepts canonical UUIDs only.
func ID(field, label string) *schema.String {
	return schema.NewString(field, label).
		Trim().
		Required().
		Rule(validator.ValidUUID)
}

// IDOrTestID also accepts token identifiers such as "task-1". Only sets built
// with WithTestIDs use it.
func IDOrTestID(field, label string) *schema.String {
	return schema.NewString(field, label).
		Trim().
		Required().
		Rule(validator.ValidUUIDOrToken)
}

// OptionalID wraps an identifier schema built by id so blank input parses to
// "". Used where an empty value clears a reference, e.g. "unassigned".
func OptionalID(id func(field, label string) *schema.String, field, label string) *schema.String {
	return id(field, label).Optional()
}

// TimeOfDay is an optional 24-hour HH:MM value.
func TimeOfDay(field, label string) *schema.String {
	return schema.NewString(field, label).
		Trim().
		Rule(validator.ValidTimeOfDay).
		Optional()
}

// DueDate accepts today through DueDateMaxYears ahead, relative to now.
func DueDate(now func() time.Time) *schema.Date {
	return schema.NewDate("dueDate", "Due date", now, DueDateMaxYears).Optional()
}

// SearchQuery never rejects content, only length; an empty result is valid.
// Length is checked again after sanitizing because compatibility folding can
// expand a single rune into several.
func SearchQuery() *schema.String {
	return schema.NewString("query", "Search query").
		Trim().
		Max(SearchQueryMaxLength).
		Transform(sanitizer.SanitizeSearchQuery).
		Max(SearchQueryMaxLength).
		Optional()
}
