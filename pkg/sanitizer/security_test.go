package sanitizer_test

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/choreboard/pkg/sanitizer"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes script block with content",
			input:    "<script>alert('XSS')</script>",
			expected: "",
		},
		{
			name:     "removes script block case insensitive with attributes",
			input:    "Buy milk<SCRIPT type=\"text/javascript\">\nsteal()\n</ScRiPt >",
			expected: "Buy milk",
		},
		{
			name:     "strips tags but keeps inner text",
			input:    "<b>Buy</b> <i>milk</i>",
			expected: "Buy milk",
		},
		{
			name:     "removes javascript protocol anywhere",
			input:    "click JavaScript:doThing() now",
			expected: "click doThing() now",
		},
		{
			name:     "removes vbscript and data protocols",
			input:    "vbscript:msgbox data:text/html,hi",
			expected: "msgbox text/html,hi",
		},
		{
			name:     "removes event handler tokens",
			input:    "x onclick=go() y ONLOAD = z",
			expected: "x go() y  z",
		},
		{
			name:     "removes dangerous call names but keeps paren",
			input:    "eval(1) Confirm (2) prompt(3)",
			expected: "(1) (2) (3)",
		},
		{
			name:     "removes malformed tag remnants",
			input:    "<img src=x onerror=alert(1)",
			expected: "img src=x (1)",
		},
		{
			name:     "removes leftover brackets",
			input:    "a > b",
			expected: "a  b",
		},
		{
			name:     "catches spliced markers",
			input:    "javajavascript:script:go",
			expected: "go",
		},
		{
			name:     "catches spliced script tag",
			input:    "<scr<script>x</script>ipt>alert(1)</script>",
			expected: "(1)",
		},
		{
			name:     "keeps plain text",
			input:    "  Take out the trash - before 8pm.  ",
			expected: "Take out the trash - before 8pm.",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizeText(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	input := `<div onmouseover="x">Water <a href="javascript:void(0)">plants</a></div>`
	assert.Equal(t, sanitizer.SanitizeText(input), sanitizer.SanitizeHTML(input))
	assert.False(t, sanitizer.ContainsInjectionMarkers(sanitizer.SanitizeHTML(input)))
}

var onHandlerRegex = regexp.MustCompile(`(?i)on\w+=`)

// fragments are glued randomly so the corpus is full of partial and spliced markers.
var fragments = []string{
	"<", ">", "<script>", "</script>", "<scr", "ipt>", "script", "java", "script:",
	"javascript:", "JAVASCRIPT:", "vbscript:", "data:", "da", "ta:", "on", "click", "=",
	"onerror=", "ONLOAD=", "alert(", "al", "ert(", "eval(", "confirm(", "prompt(", "(", ")",
	" ", "\t", "\n", "milk", "'", "\"", "/", "img", "x", "1",
}

func randomPayload(rng *rand.Rand) string {
	var b strings.Builder
	n := rng.Intn(12) + 1
	for range n {
		b.WriteString(fragments[rng.Intn(len(fragments))])
	}
	return b.String()
}

func TestSanitizeText_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	for range 5000 {
		input := randomPayload(rng)
		once := sanitizer.SanitizeText(input)

		assert.Equal(t, once, sanitizer.SanitizeText(once), "not idempotent for %q", input)

		lower := strings.ToLower(once)
		assert.NotContains(t, lower, "<script", "input %q", input)
		assert.NotContains(t, lower, "javascript:", "input %q", input)
		assert.NotContains(t, lower, "data:", "input %q", input)
		assert.NotContains(t, once, "<", "input %q", input)
		assert.NotContains(t, once, ">", "input %q", input)
		assert.False(t, onHandlerRegex.MatchString(once), "event handler left in %q from %q", once, input)
		assert.False(t, sanitizer.ContainsInjectionMarkers(once), "markers left in %q from %q", once, input)
	}
}

func TestContainsInjectionMarkers(t *testing.T) {
	t.Parallel()

	assert.True(t, sanitizer.ContainsInjectionMarkers("<b>"))
	assert.True(t, sanitizer.ContainsInjectionMarkers("JavaScript:x"))
	assert.True(t, sanitizer.ContainsInjectionMarkers("onload=1"))
	assert.True(t, sanitizer.ContainsInjectionMarkers("eval (x)"))
	assert.False(t, sanitizer.ContainsInjectionMarkers("Clean the kitchen"))
}
