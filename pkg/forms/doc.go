// Package forms defines the field schemas and per-operation composite
// schemas for every ChoreBoard input.
//
// Field constructors return schema values that can be reused and extended.
// A Set bundles the composites for one configuration:
//
//	set := forms.New(forms.WithLenientPasswords())
//	res := schema.Validate(set.SignUp(), raw)
//	if !res.Success {
//	    // res.Error holds exactly one message
//	}
//
// Text fields reject on the first violated rule. Priority and status are
// normalizing enums and never reject; role is a strict enum.
package forms
