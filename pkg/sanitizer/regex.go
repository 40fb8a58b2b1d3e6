package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Paired script blocks, tolerant of attributes, newlines and whitespace before the closing bracket.
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)

	// Anything tag shaped, including comments and doctype declarations.
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Dangerous URI schemes. Matched anywhere, not only at the start of the string.
	dangerousProtocolRegex = regexp.MustCompile(`(?i)(?:javascript|vbscript|data)\s*:`)

	// Inline event handlers such as onclick= or onerror =.
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)

	// Call shaped tokens of dialog and eval functions. The opening paren is kept.
	dangerousCallRegex = regexp.MustCompile(`(?i)(?:alert|eval|confirm|prompt)\s*\(`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Email and general formatting
	dotRegex = regexp.MustCompile(`\.+`)
)
