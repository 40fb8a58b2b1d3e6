package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString counts runes, not bytes, so accented names are measured as typed.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// EqualString validates that value equals other, e.g. a password confirmation.
func EqualString(field, value, other, otherLabel string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + otherLabel,
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherLabel,
			},
		},
	}
}

func NotEqualString(field, value, other, otherLabel string) Rule {
	return Rule{
		Check: func() bool {
			return value != other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be different from " + otherLabel,
			TranslationKey: "validation.not_equal",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherLabel,
			},
		},
	}
}
