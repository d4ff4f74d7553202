package models

import (
	"strconv"
	"strings"
)

// AyatRange is the textual start/end pair of a verse range.
type AyatRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FormatRange renders "n" when start equals end, otherwise "start-end". No reordering is applied.
func FormatRange(start, end int) string {
	if start == end {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// ParseRange splits text on the first "-". Without a separator start and end are both the text.
func ParseRange(text string) AyatRange {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return AyatRange{}
	}
	if start, end, found := strings.Cut(trimmed, "-"); found {
		return AyatRange{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
	}
	return AyatRange{Start: trimmed, End: trimmed}
}

// CountAyat returns the number of verses covered by text. A range counts only when both
// endpoints parse; any other malformed input counts as zero.
func CountAyat(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	if !strings.Contains(trimmed, "-") {
		if _, err := leadingInt(trimmed); err == nil {
			return 1
		}
		return 0
	}
	parts := strings.Split(trimmed, "-")
	if len(parts) != 2 {
		return 0
	}
	start, errStart := leadingInt(parts[0])
	end, errEnd := leadingInt(parts[1])
	if errStart != nil || errEnd != nil {
		return 0
	}
	if end < start {
		return start - end + 1
	}
	return end - start + 1
}

// leadingInt parses the leading decimal digits of s, ignoring whatever follows them.
func leadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s[:end])
}
