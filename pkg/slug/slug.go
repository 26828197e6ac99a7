// Package slug derives ASCII slugs from free-form names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalid     = regexp.MustCompile(`[^a-z0-9_-]+`)
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From lowercases s, strips accents, and replaces everything outside
// [a-z0-9_-] with single hyphens. Letters with no ASCII decomposition
// (Cyrillic, CJK) are dropped, so the result may be empty.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, result)

	result = invalid.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
