// Package sanitizer provides pure string transforms that neutralise script
// injection markers in user supplied text before it reaches a remote call.
//
// The package is denylist based. It strips a fixed, documented list of
// constructs and does not parse HTML or URIs:
//
//   - paired <script>…</script> blocks
//   - any remaining tag shaped substring (<…>)
//   - javascript:, vbscript: and data: scheme markers, anywhere in the string
//   - inline event handler tokens (on<word>=)
//   - alert(, eval(, confirm( and prompt( call names
//   - stray angle brackets
//   - leading and trailing whitespace
//
// SanitizeText applies the steps above in that order and repeats the whole
// pass until the output stops changing, so removing one marker can never
// splice together a new one. The result is therefore idempotent and
// guaranteed to contain none of the listed markers. Payloads that do not use
// these literal patterns are not detected; that is an accepted limitation.
//
// Helpers compose with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.SanitizeText,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	safe := clean("  <b>Buy</b>   milk ") // "Buy milk"
//
// # Error handling
//
// None of the helpers returns an error. Fully stripped input yields an empty
// string.
//
// # Concurrency
//
// All patterns are compiled once at package initialisation and the package
// holds no mutable state, so every helper is safe for concurrent use.
package sanitizer
