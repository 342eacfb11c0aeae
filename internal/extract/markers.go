package extract

import "strings"

// BetweenMarkers returns the text strictly between the first occurrence
// of startMarker and the first occurrence of endMarker after it, trimmed
// of surrounding whitespace. It returns the empty string when either
// marker is absent; it never errors.
func BetweenMarkers(text, startMarker, endMarker string) string {
	start := strings.Index(text, startMarker)
	if start < 0 {
		return ""
	}
	from := start + len(startMarker)

	end := strings.Index(text[from:], endMarker)
	if end < 0 {
		return ""
	}

	return strings.TrimSpace(text[from : from+end])
}

// LineAfter returns the trimmed line immediately following the first
// line that contains anchor, or the empty string when the anchor is
// absent or sits on the final line.
func LineAfter(text, anchor string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.Contains(line, anchor) {
			if i+1 < len(lines) {
				return strings.TrimSpace(lines[i+1])
			}
			return ""
		}
	}
	return ""
}

// CountNonEmptyLines counts the lines of text that contain non-whitespace
// content.
func CountNonEmptyLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
