package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// Field binds an input key to a schema.
type Field struct {
	name     string
	schema   Schema[any]
	optional bool
}

// Required declares a key that is always parsed; a missing key is parsed as nil
// so the field schema reports it ("Email is required").
func Required[T any](name string, s Schema[T]) Field {
	return Field{name: name, schema: Erase(s)}
}

// Optional declares a key that is skipped when absent or nil and omitted from Values.
func Optional[T any](name string, s Schema[T]) Field {
	return Field{name: name, schema: Erase(s), optional: true}
}

type refinement struct {
	label string
	rule  func(Values) validator.Rule
}

// Object validates a mapping field by field in declared order.
type Object struct {
	fields      []Field
	refinements []refinement
}

func NewObject(fields ...Field) *Object {
	return &Object{fields: slices.Clone(fields)}
}

// Refine adds a cross-field rule. Refinements run only after every field
// passed, in the order they were added.
func (o *Object) Refine(label string, rule func(Values) validator.Rule) *Object {
	c := *o
	c.refinements = append(slices.Clone(o.refinements), refinement{label: label, rule: rule})
	return &c
}

// Fields returns the declared keys in order.
func (o *Object) Fields() []string {
	names := make([]string, len(o.fields))
	for i, f := range o.fields {
		names[i] = f.name
	}
	return names
}

// Parse validates raw and returns only declared keys; unknown keys are dropped.
func (o *Object) Parse(raw any) (Values, error) {
	input, err := toMap(raw)
	if err != nil {
		return nil, err
	}

	out := make(Values, len(o.fields))
	for _, f := range o.fields {
		value, present := input[f.name]
		if f.optional && (!present || value == nil) {
			continue
		}
		parsed, err := f.schema.Parse(value)
		if err != nil {
			return nil, err
		}
		out[f.name] = parsed
	}

	for _, r := range o.refinements {
		if err := validator.First(r.rule(out)); err != nil {
			return nil, labelled(r.label, err)
		}
	}

	return out, nil
}

// Map converts an Object into a typed schema.
func Map[T any](o *Object, fn func(Values) T) Schema[T] {
	return Func[T](func(raw any) (T, error) {
		values, err := o.Parse(raw)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(values), nil
	})
}

func toMap(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case Values:
		return v, nil
	case map[string]any:
		return v, nil
	case map[string]string:
		m := make(map[string]any, len(v))
		for key, value := range v {
			m[key] = value
		}
		return m, nil
	case url.Values:
		return firstValues(v), nil
	}

	// Structs and other mappings go through their JSON representation.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
	return m, nil
}

// Values holds sanitized field values keyed by input name.
type Values map[string]any

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the value for key or "" when absent.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// StringPtr returns nil for absent keys, distinguishing "not sent" from "".
func (v Values) StringPtr(key string) *string {
	s, ok := v[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// Time returns nil for absent keys and zero times.
func (v Values) Time(key string) *time.Time {
	t, ok := v[key].(time.Time)
	if !ok || t.IsZero() {
		return nil
	}
	return &t
}
