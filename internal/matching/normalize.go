package matching

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	spaces     = regexp.MustCompile(`\s+`)
)

// NormalizeCity canonicalizes a free-text city or zone name for substring
// comparison: lower-case, accents stripped, anything outside letters, digits
// and spaces replaced by a space, whitespace collapsed. The result is stable
// under re-normalization.
func NormalizeCity(name string) string {
	if name == "" {
		return ""
	}

	text := strings.ToLower(strings.TrimSpace(name))
	if stripped, _, err := transform.String(stripMarks, text); err == nil {
		text = stripped
	}
	text = nonAlnum.ReplaceAllString(text, " ")
	text = spaces.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// SameArea reports whether two already-normalized locations overlap. The
// comparison is bidirectional containment, not equality, so "paris" matches
// "ile de france paris".
func SameArea(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
