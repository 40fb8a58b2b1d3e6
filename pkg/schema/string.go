package schema

import (
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/choreboard/pkg/sanitizer"
	"github.com/dmitrymomot/choreboard/pkg/validator"
)

type step struct {
	transform func(string) string
	rules     func(field, value string) []validator.Rule
}

// String is an immutable, ordered pipeline of transforms and rules.
type String struct {
	field    string
	label    string
	optional bool
	steps    []step
}

// NewString starts an empty pipeline. field is the input key reported in
// errors, label the human name used to build messages.
func NewString(field, label string) *String {
	return &String{field: field, label: label}
}

func (s *String) with(st step) *String {
	c := *s
	c.steps = append(slices.Clone(s.steps), st)
	return &c
}

// Field returns the input key.
func (s *String) Field() string { return s.field }

// Label returns the human readable field name.
func (s *String) Label() string { return s.label }

// Named copies the pipeline under a different key and label.
func (s *String) Named(field, label string) *String {
	c := *s
	c.field = field
	c.label = label
	return &c
}

// Optional makes blank input valid: it parses to "" without running any step.
func (s *String) Optional() *String {
	c := *s
	c.optional = true
	return &c
}

func (s *String) Transform(fn func(string) string) *String {
	return s.with(step{transform: fn})
}

func (s *String) Trim() *String {
	return s.Transform(sanitizer.Trim)
}

func (s *String) Lower() *String {
	return s.Transform(sanitizer.ToLower)
}

func (s *String) Sanitize() *String {
	return s.Transform(sanitizer.SanitizeText)
}

func (s *String) CollapseWhitespace() *String {
	return s.Transform(sanitizer.CollapseWhitespace)
}

// Rule appends a single rule constructor.
func (s *String) Rule(fn func(field, value string) validator.Rule) *String {
	return s.with(step{rules: func(field, value string) []validator.Rule {
		return []validator.Rule{fn(field, value)}
	}})
}

// Rules appends a group of rules evaluated in order, e.g. password strength.
func (s *String) Rules(fn func(field, value string) []validator.Rule) *String {
	return s.with(step{rules: fn})
}

func (s *String) Required() *String {
	return s.Rule(validator.RequiredString)
}

func (s *String) Min(n int) *String {
	return s.Rule(func(field, value string) validator.Rule {
		return validator.MinLenString(field, value, n)
	})
}

func (s *String) Max(n int) *String {
	return s.Rule(func(field, value string) validator.Rule {
		return validator.MaxLenString(field, value, n)
	})
}

func (s *String) Match(re *regexp.Regexp, message string) *String {
	return s.Rule(func(field, value string) validator.Rule {
		return validator.Matches(field, value, re, message)
	})
}

// Parse runs the pipeline. Non-text input fails with a type message.
func (s *String) Parse(raw any) (string, error) {
	value, ok := toString(raw)
	if !ok {
		return "", labelled(s.label, validator.First(typeRule(s.field)))
	}

	if s.optional && strings.TrimSpace(value) == "" {
		return "", nil
	}

	for _, st := range s.steps {
		if st.transform != nil {
			value = st.transform(value)
			continue
		}
		if err := validator.First(st.rules(s.field, value)...); err != nil {
			return "", labelled(s.label, err)
		}
	}

	return value, nil
}
