package strings

import (
	"strings"
)

// MinTruncateLen is the smallest useful maxLen for OneLine: one character
// plus the "..." marker.
const MinTruncateLen = 4

// OneLine collapses a string to a single line and truncates it to maxLen
// runes, appending "..." when content was cut. Whitespace runs (including
// newlines) become single spaces. maxLen values below MinTruncateLen are
// clamped.
func OneLine(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
