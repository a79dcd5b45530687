package names

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// FormatName formats a guest name to Title Case: uppercase the first letter
// of each word and lowercase the rest. Collapses extra spaces and trims.
// Word boundaries are start-of-string, space, hyphen, apostrophe and slash,
// so "jOhN   doe" -> "John Doe" and "ana-maría o'brien" -> "Ana-María O'Brien".
func FormatName(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")
	lower := strings.ToLower(collapsed)

	var b strings.Builder
	b.Grow(len(lower))
	atBoundary := true
	for _, r := range lower {
		if atBoundary && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		atBoundary = isBoundary(r)
	}
	return b.String()
}

// Slugify derives the URL identifier from a formatted name: lowercase with
// whitespace runs replaced by a single hyphen. Punctuation passes through
// unchanged, so apostrophes end up in invite links as-is.
func Slugify(name string) string {
	trimmed := strings.TrimSpace(name)
	return whitespaceRe.ReplaceAllString(strings.ToLower(trimmed), "-")
}

func isBoundary(r rune) bool {
	switch r {
	case ' ', '-', '\'', '/':
		return true
	}
	return false
}
