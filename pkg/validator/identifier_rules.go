package validator

import (
	"regexp"
)

var tokenRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidToken accepts opaque identifiers made of letters, digits, '_' and '-'.
func ValidToken(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return tokenRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "may only contain letters, numbers, underscores and hyphens",
			TranslationKey: "validation.token",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUUIDOrToken accepts a canonical UUID or any token. Non-production
// identifiers (fixtures, seeded data) use the token branch.
func ValidUUIDOrToken(field, value string) Rule {
	uuidRule := ValidUUID(field, value)
	tokenRule := ValidToken(field, value)
	return Rule{
		Check: func() bool {
			return uuidRule.Check() || tokenRule.Check()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid identifier",
			TranslationKey: "validation.identifier",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
