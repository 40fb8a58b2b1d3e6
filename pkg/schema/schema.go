package schema

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// Schema parses raw input into T or returns a validation error.
type Schema[T any] interface {
	Parse(raw any) (T, error)
}

// Func adapts a plain function to Schema.
type Func[T any] func(raw any) (T, error)

func (f Func[T]) Parse(raw any) (T, error) {
	return f(raw)
}

// Erase hides the output type so heterogeneous schemas can live in one Object.
func Erase[T any](s Schema[T]) Schema[any] {
	return Func[any](func(raw any) (any, error) {
		v, err := s.Parse(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// labelled rewrites the first validation error into a sentence starting with label.
func labelled(label string, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return err
	}
	ve := verrs[0]
	ve.Message = sentence(label, ve.Message)
	return validator.ValidationErrors{ve}
}

func sentence(label, message string) string {
	if label == "" {
		return capitalize(message)
	}
	return capitalize(label + " " + message)
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

func typeRule(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be text",
			TranslationKey: "validation.type_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// toString accepts the shapes a form or JSON decoder produces for text.
func toString(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", true
		}
		return *v, true
	case []byte:
		return string(v), true
	case []string:
		if len(v) == 0 {
			return "", true
		}
		return v[0], true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// toScalarString also renders numbers and booleans, for enum-like tokens such as priority "1".
func toScalarString(raw any) string {
	if s, ok := toString(raw); ok {
		return s
	}
	switch v := raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
		return fmt.Sprint(v)
	case float32:
		return fmt.Sprint(v)
	case float64:
		return fmt.Sprint(v)
	}
	return ""
}

func firstValues(v url.Values) map[string]any {
	m := make(map[string]any, len(v))
	for key := range v {
		m[key] = v.Get(key)
	}
	return m
}

func trimmedEmpty(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}
