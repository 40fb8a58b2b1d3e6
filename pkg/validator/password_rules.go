package validator

import (
	"regexp"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// WeakPasswordPatterns are substrings that make a password guessable no matter
// what surrounds them.
var WeakPasswordPatterns = []string{"password", "123456", "qwerty", "admin"}

type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	// WeakPatterns are rejected case-insensitively anywhere in the password.
	WeakPatterns []string
}

// DefaultPasswordStrength requires 8-128 characters, all four character
// classes and none of the weak patterns.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		WeakPatterns:     WeakPasswordPatterns,
	}
}

// LenientPasswordStrength keeps only the length bounds. Meant for test
// environments where fixtures use short, predictable passwords.
func LenientPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength: 8,
		MaxLength: 128,
	}
}

// PasswordRules expands config into ordered rules, length first.
// Each requirement is its own rule so callers using First report the exact
// missing piece instead of a generic "too weak".
func PasswordRules(field, value string, config PasswordStrengthConfig) []Rule {
	rules := []Rule{
		MinLenString(field, value, config.MinLength),
		MaxLenString(field, value, config.MaxLength),
	}
	if config.RequireUppercase {
		rules = append(rules, PasswordUppercase(field, value))
	}
	if config.RequireLowercase {
		rules = append(rules, PasswordLowercase(field, value))
	}
	if config.RequireDigits {
		rules = append(rules, PasswordDigit(field, value))
	}
	if config.RequireSpecial {
		rules = append(rules, PasswordSpecialChar(field, value))
	}
	if len(config.WeakPatterns) > 0 {
		rules = append(rules, NoWeakPatterns(field, value, config.WeakPatterns))
	}
	return rules
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one uppercase letter",
			TranslationKey: "validation.password_uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one lowercase letter",
			TranslationKey: "validation.password_lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one number",
			TranslationKey: "validation.password_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one special character",
			TranslationKey: "validation.password_special",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func NoWeakPatterns(field, value string, patterns []string) Rule {
	rule := NotContainsFold(field, value, patterns, "contains a common pattern and is too easy to guess")
	rule.Error.TranslationKey = "validation.password_common"
	return rule
}
