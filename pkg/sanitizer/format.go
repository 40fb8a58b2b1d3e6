package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// SearchQueryDenylist holds the characters dropped from search queries.
const SearchQueryDenylist = `'";\`

var (
	searchPolicyOnce sync.Once
	searchPolicy     *bluemonday.Policy
)

func stripPolicy() *bluemonday.Policy {
	searchPolicyOnce.Do(func() {
		searchPolicy = bluemonday.StrictPolicy()
	})
	return searchPolicy
}

// SanitizeSearchQuery cleans a free text search query.
// Compatibility forms are folded first (fullwidth ＜ becomes <) so they cannot
// slip past tag stripping. Quotes, semicolons and backslashes are removed.
// An empty result is valid: search is optional.
func SanitizeSearchQuery(q string) string {
	q = norm.NFKC.String(q)
	q = RemoveControlChars(q)
	q = StripScriptTags(q)
	// bluemonday escapes what it keeps; unescape so the query stays plain text.
	q = html.UnescapeString(stripPolicy().Sanitize(q))
	q = StripTags(q)
	q = RemoveAngleBrackets(q)
	q = RemoveChars(q, SearchQueryDenylist)
	return CollapseWhitespace(q)
}

// NormalizeEmail trims and lowercases an address and consolidates consecutive
// dots in the local part. Invalid shapes are returned trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail keeps the first character and the domain so log lines stay
// recognisable without carrying the full address.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
