package validator

import (
	"regexp"

	"github.com/google/uuid"
)

// Canonical 8-4-4-4-12 form with a version nibble of 1-8 and an RFC 4122 variant.
var canonicalUUIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-8][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// ValidUUID accepts only canonical, versioned UUIDs. The regex rejects the
// braced and urn: forms uuid.Parse would otherwise allow.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !canonicalUUIDRegex.MatchString(value) {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
