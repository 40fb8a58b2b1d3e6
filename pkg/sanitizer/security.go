package sanitizer

import (
	"strings"
)

// StripScriptTags removes <script> blocks together with their content.
func StripScriptTags(s string) string {
	return scriptBlockRegex.ReplaceAllString(s, "")
}

// StripTags removes every tag shaped substring, leaving the text between tags.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// RemoveDangerousProtocols removes javascript:, vbscript: and data: markers.
func RemoveDangerousProtocols(s string) string {
	return dangerousProtocolRegex.ReplaceAllString(s, "")
}

// RemoveEventHandlers removes inline event handler tokens (onclick=, onload = ...).
// Only the handler name and the equals sign are removed, the value is left in place.
func RemoveEventHandlers(s string) string {
	return eventHandlerRegex.ReplaceAllString(s, "")
}

// RemoveDangerousCalls strips the function name from alert(, eval(, confirm( and prompt(.
func RemoveDangerousCalls(s string) string {
	return dangerousCallRegex.ReplaceAllString(s, "(")
}

// RemoveAngleBrackets drops any leftover < and > characters.
func RemoveAngleBrackets(s string) string {
	return RemoveChars(s, "<>")
}

// textPass is one pass of the sanitization pipeline. Order matters: script
// blocks go before generic tags so their content is dropped too.
var textPass = Compose(
	StripScriptTags,
	StripTags,
	RemoveDangerousProtocols,
	RemoveEventHandlers,
	RemoveDangerousCalls,
	RemoveAngleBrackets,
	strings.TrimSpace,
)

// SanitizeText removes script injection markers from free text.
// Every step only deletes characters, so repeating the pass terminates; the
// repetition guarantees that splices like "javajavascript:script:" are caught.
var SanitizeText = Fixpoint(textPass)

// SanitizeHTML is the entry point used for user generated content
// (task descriptions, project descriptions). It applies SanitizeText.
func SanitizeHTML(s string) string {
	return SanitizeText(s)
}

// ContainsInjectionMarkers reports whether s still carries any marker that
// SanitizeText removes. Used by tests and by the CLI to flag suspicious input.
func ContainsInjectionMarkers(s string) bool {
	return strings.ContainsAny(s, "<>") ||
		dangerousProtocolRegex.MatchString(s) ||
		eventHandlerRegex.MatchString(s) ||
		dangerousCallRegex.MatchString(s)
}
