package validator

import (
	"regexp"
	"strings"
)

// Matches validates value against a pre-compiled pattern. The message is used
// verbatim, so describe the allowed shape ("may only contain letters").
func Matches(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": re.String(),
			},
		},
	}
}

// NotContainsFold rejects values containing any of the substrings, ignoring case.
func NotContainsFold(field, value string, substrings []string, message string) Rule {
	return Rule{
		Check: func() bool {
			lower := strings.ToLower(value)
			for _, s := range substrings {
				if strings.Contains(lower, strings.ToLower(s)) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.not_contains",
			TranslationValues: map[string]any{
				"field":      field,
				"substrings": substrings,
			},
		},
	}
}
