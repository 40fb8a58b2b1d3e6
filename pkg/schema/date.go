package schema

import (
	"strings"
	"time"

	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// DateLayout is the calendar date format accepted from forms.
const DateLayout = "2006-01-02"

// Date parses calendar dates and bounds them relative to a clock.
type Date struct {
	field    string
	label    string
	optional bool
	now      func() time.Time
	maxYears int
}

// NewDate accepts dates from today up to maxYears ahead, compared at local
// midnight of now's location. A nil now means time.Now.
func NewDate(field, label string, now func() time.Time, maxYears int) *Date {
	if now == nil {
		now = time.Now
	}
	return &Date{field: field, label: label, now: now, maxYears: maxYears}
}

// Optional makes blank input valid: it parses to the zero time.
func (d *Date) Optional() *Date {
	c := *d
	c.optional = true
	return &c
}

func (d *Date) Field() string { return d.field }

func (d *Date) Parse(raw any) (time.Time, error) {
	now := d.now()

	value, ok := d.toTime(raw, now.Location())
	if !ok {
		return time.Time{}, labelled(d.label, validator.First(d.formatRule()))
	}
	if value.IsZero() {
		if d.optional {
			return time.Time{}, nil
		}
		return time.Time{}, labelled(d.label, validator.First(validator.RequiredString(d.field, "")))
	}

	if err := validator.First(
		validator.NotPastDay(d.field, value, now),
		validator.MaxYearsAhead(d.field, value, now, d.maxYears),
	); err != nil {
		return time.Time{}, labelled(d.label, err)
	}

	return value, nil
}

func (d *Date) toTime(raw any, loc *time.Location) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, true
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, true
		}
		return *v, true
	}

	s, ok := toString(raw)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (d *Date) formatRule() validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:          d.field,
			Message:        "must be a valid date (YYYY-MM-DD)",
			TranslationKey: "validation.date_format",
			TranslationValues: map[string]any{
				"field": d.field,
			},
		},
	}
}
