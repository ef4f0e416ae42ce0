package directory

import (
	"strings"
	"unicode"
)

// NormalizeBasic lower-cases s, collapses whitespace runs to one space and trims.
func NormalizeBasic(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// OnlyDigits keeps the ASCII digits of s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
