package validator

import (
	"regexp"
)

var (
	// Conservative address shape: common local-part characters, dotted domain, alphabetic TLD.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// 24-hour HH:MM.
	timeOfDayRegex = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

// ValidEmail validates the address against a conservative pattern rather than
// full RFC 5322: quoted local parts and IP literals are rejected on purpose.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidTimeOfDay(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return timeOfDayRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid time in HH:MM format",
			TranslationKey: "validation.time_of_day",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
