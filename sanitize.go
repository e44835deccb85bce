package pergola

import (
	"strings"
	"unicode"
)

// scrubControl strips dangerous control characters from body content.
// We preserve:
// - Newline (\n)
// - Tab (\t)
// - Carriage Return (\r)
// We remove:
// - ANSI codes (ESC), NULL, BEL, etc.
// Retrieved passages are untrusted input; a hostile document must not be
// able to inject escape sequences into the terminal.
func scrubControl(s string) string {
	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	// Slow path: build clean string
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}
