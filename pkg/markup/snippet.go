package markup

import "unicode/utf8"

// Snippet returns s cut to maxLen runes for quoting in failure messages.
// If truncated, a "..." suffix is appended (included in maxLen). Returns s
// unchanged if it is already short enough, and "" for maxLen <= 0. Rune
// aware, never produces invalid UTF-8.
func Snippet(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
