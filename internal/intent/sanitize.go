package intent

import (
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips code fences and surrounding prose from a completion.
func sanitizeJSONResponse(text string) string {
	text = strings.TrimSpace(text)
	if matches := codeFencePattern.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
