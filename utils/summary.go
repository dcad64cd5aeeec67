package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// GenerateSummary derives a plain-text summary from HTML-capable content:
// markup is stripped, whitespace collapsed, and the result truncated to
// maxLength runes with an ellipsis when content remains.
func GenerateSummary(content string, maxLength int) string {
	text := html.UnescapeString(stripPolicy.Sanitize(content))
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) > maxLength {
		return string(runes[:maxLength]) + "..."
	}
	return text
}
