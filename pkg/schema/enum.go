package schema

import (
	"slices"
	"strings"
)

// Enum normalises free-form tokens onto a fixed vocabulary.
// Unlike every other schema it never fails: unknown input maps to the fallback.
type Enum struct {
	field    string
	fallback string
	values   []string
	aliases  map[string]string
}

// NewEnum builds an enum from canonical values and their accepted spellings.
// Canonical values always map to themselves.
func NewEnum(field, fallback string, vocabulary map[string][]string) *Enum {
	e := &Enum{
		field:    field,
		fallback: fallback,
		aliases:  make(map[string]string),
	}
	for value, spellings := range vocabulary {
		e.values = append(e.values, value)
		e.aliases[normalizeToken(value)] = value
		for _, spelling := range spellings {
			e.aliases[normalizeToken(spelling)] = value
		}
	}
	slices.Sort(e.values)
	return e
}

// Field returns the input key.
func (e *Enum) Field() string { return e.field }

// Fallback returns the value used for unrecognised input.
func (e *Enum) Fallback() string { return e.fallback }

// Values returns the canonical vocabulary, sorted.
func (e *Enum) Values() []string { return slices.Clone(e.values) }

// Normalize maps raw onto the vocabulary. It is total: any input, including
// nil, numbers and types whose String method panics, yields a vocabulary value.
func (e *Enum) Normalize(raw any) (value string) {
	defer func() {
		if recover() != nil {
			value = e.fallback
		}
	}()

	if v, ok := e.aliases[normalizeToken(toScalarString(raw))]; ok {
		return v
	}
	return e.fallback
}

// Parse implements Schema. The error is always nil.
func (e *Enum) Parse(raw any) (string, error) {
	return e.Normalize(raw), nil
}

// normalizeToken lowercases and folds spaces and hyphens into underscores so
// "In Progress", "in-progress" and "IN_PROGRESS" compare equal.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	}), "_")
	return s
}
