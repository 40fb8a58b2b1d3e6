package validator

import (
	"fmt"
	"time"
)

// StartOfDay truncates t to local midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// NotPastDay validates that value falls on today or later. Both sides are
// compared at local midnight, so any time earlier today still passes.
func NotPastDay(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			loc := now.Location()
			return !StartOfDay(value, loc).Before(StartOfDay(now, loc))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "cannot be in the past",
			TranslationKey: "validation.date_not_past",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxYearsAhead validates that value is no later than the same calendar day
// years after now.
func MaxYearsAhead(field string, value, now time.Time, years int) Rule {
	return Rule{
		Check: func() bool {
			loc := now.Location()
			limit := StartOfDay(now, loc).AddDate(years, 0, 0)
			return !StartOfDay(value, loc).After(limit)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("cannot be more than %d years in the future", years),
			TranslationKey: "validation.date_max_years_ahead",
			TranslationValues: map[string]any{
				"field": field,
				"years": years,
			},
		},
	}
}
