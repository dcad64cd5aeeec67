package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSummary_StripsMarkup(t *testing.T) {
	summary := GenerateSummary("<p>Hi there</p>", 200)

	assert.Equal(t, "Hi there", summary)
	assert.NotContains(t, summary, "<")
	assert.NotContains(t, summary, ">")
}

func TestGenerateSummary_CollapsesWhitespace(t *testing.T) {
	summary := GenerateSummary("<h1>Title</h1>\n<p>First   line</p>\n<p>Second line</p>", 200)

	assert.Equal(t, "Title First line Second line", summary)
}

func TestGenerateSummary_TruncatesToBudget(t *testing.T) {
	content := "<p>" + strings.Repeat("a", 500) + "</p>"

	summary := GenerateSummary(content, 200)

	assert.Equal(t, strings.Repeat("a", 200)+"...", summary)
	assert.Len(t, []rune(summary), 203)
}

func TestGenerateSummary_ShortContentKeptWhole(t *testing.T) {
	summary := GenerateSummary("short body", 200)

	assert.Equal(t, "short body", summary)
}

func TestGenerateSummary_EmptyContent(t *testing.T) {
	assert.Equal(t, "", GenerateSummary("", 200))
}

func TestGenerateSummary_NonEmptyContentGivesNonEmptySummary(t *testing.T) {
	summary := GenerateSummary("<div><strong>x</strong></div>", 200)

	assert.NotEmpty(t, summary)
}

func TestGenerateSummary_UnescapesEntities(t *testing.T) {
	summary := GenerateSummary("<p>salt &amp; pepper</p>", 200)

	assert.Equal(t, "salt & pepper", summary)
}
