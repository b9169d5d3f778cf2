package nameutil

import (
	"strings"
	"unicode"
)

// SanitizeIdentifier removes every whitespace rune from s. If nothing is
// left, fallback is returned instead.
func SanitizeIdentifier(s, fallback string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}

// OrDefault trims s and returns fallback when the result is empty.
func OrDefault(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
