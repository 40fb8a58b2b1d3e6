// Package schema turns untyped user input into sanitized values through
// declarative, immutable field schemas.
//
// A String schema is an ordered list of steps. A step is either a transform
// (trim, lowercase, sanitize) or a group of validator rules. Steps run in
// declaration order and the first failing rule ends parsing, so a failure
// always carries exactly one message. Builder methods return a new schema and
// never mutate the receiver, which lets base schemas be shared and extended.
//
//	name := schema.NewString("firstName", "First name").
//	    Trim().
//	    Required().
//	    Max(50).
//	    Match(nameRegex, "may only contain letters, spaces, apostrophes and hyphens").
//	    Transform(sanitizer.SanitizeText).
//	    Transform(sanitizer.CollapseWhitespace)
//
// Enum is a separate category: it normalises many spellings onto a fixed
// vocabulary and falls back to a default instead of failing. Only use it for
// fields where "never reject" is the intended product behaviour.
//
// Object composes fields in declared order, then runs cross-field
// refinements. Map converts the resulting Values into a typed struct.
//
// Validate is the entry point for callers: it never panics and never returns
// an error, only a Result holding either the data or one message.
package schema
