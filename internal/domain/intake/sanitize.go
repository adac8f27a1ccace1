// Package intake holds the order form rules: field sanitizing, order
// validation and quote calculation. Nothing here performs I/O.
package intake

import (
	"regexp"
	"strings"
)

var (
	controlChars    = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	angleBrackets   = regexp.MustCompile(`[<>]`)
	lineBreaks      = regexp.MustCompile(`[\r\n\t]+`)
	repeatedSpace   = regexp.MustCompile(`\s{2,}`)
	phoneDisallowed = regexp.MustCompile(`[^0-9+()\-\s]`)
)

// SanitizeText trims value and strips control characters and angle brackets.
// Single-line fields also get line breaks and whitespace runs collapsed to a
// single space. Non-string values yield "".
func SanitizeText(value any, multiline bool) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}

	out := strings.TrimSpace(s)
	out = controlChars.ReplaceAllString(out, "")
	out = angleBrackets.ReplaceAllString(out, "")

	if !multiline {
		out = lineBreaks.ReplaceAllString(out, " ")
		out = repeatedSpace.ReplaceAllString(out, " ")
	}

	// Stripping can expose edge whitespace.
	return strings.TrimSpace(out)
}

// SanitizePhone is SanitizeText for a single line that keeps only digits,
// '+', parentheses, hyphens and spaces.
func SanitizePhone(value any) string {
	out := SanitizeText(value, false)
	out = phoneDisallowed.ReplaceAllString(out, "")
	// Removed characters can leave double spaces; collapse them again so the
	// result is stable under re-sanitizing.
	return strings.TrimSpace(repeatedSpace.ReplaceAllString(out, " "))
}
