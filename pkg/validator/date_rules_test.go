package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/choreboard/pkg/validator"
)

func TestNotPastDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	assert.NoError(t, validator.Apply(validator.NotPastDay("due", now, now)))
	assert.NoError(t, validator.Apply(validator.NotPastDay("due", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), now)),
		"earlier today is still today")
	assert.NoError(t, validator.Apply(validator.NotPastDay("due", now.AddDate(0, 0, 1), now)))
	assert.Error(t, validator.Apply(validator.NotPastDay("due", time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC), now)))
}

func TestMaxYearsAhead(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, validator.Apply(validator.MaxYearsAhead("due", now.AddDate(1, 0, 0), now, 2)))
	assert.NoError(t, validator.Apply(validator.MaxYearsAhead("due", time.Date(2028, 3, 15, 23, 0, 0, 0, time.UTC), now, 2)))
	assert.Error(t, validator.Apply(validator.MaxYearsAhead("due", time.Date(2028, 3, 16, 0, 0, 0, 0, time.UTC), now, 2)))
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	got := validator.StartOfDay(time.Date(2026, 3, 15, 22, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, loc), got)
}

func TestInListString(t *testing.T) {
	t.Parallel()

	roles := []string{"viewer", "member", "admin"}
	assert.NoError(t, validator.Apply(validator.InListString("role", "member", roles)))
	err := validator.Apply(validator.InListString("role", "owner", roles))
	assert.EqualError(t, err, "validation failed: role: must be one of: viewer, member, admin")
}
