package tui

import (
	"strings"
	"unicode/utf8"
)

// Generic fallbacks shown when a failed call carried no server message.
const (
	errFetchListings = "Something went wrong while fetching listings."
	errFetchListing  = "Something went wrong while fetching this listing."
	errFetchProfile  = "Something went wrong while fetching your profile."
	errSubmit        = "Something went wrong. Please try again."
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// capLines keeps at most maxLines lines of an already-wrapped string and
// reports whether anything was clipped.
func capLines(s string, maxLines int) (string, bool) {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s, false
	}
	return strings.Join(lines[:maxLines], "\n"), true
}
