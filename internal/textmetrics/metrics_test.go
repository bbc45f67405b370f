package textmetrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_EmptyTextHasZeroAverages(t *testing.T) {
	m := Analyze("")
	assert.Equal(t, 0, m.Words)
	assert.Equal(t, 0, m.Sentences)
	assert.Equal(t, 0, m.Paragraphs)
	assert.Equal(t, 0.0, m.AvgWordsPerSentence)
	assert.Equal(t, 0.0, m.AvgWordsPerParagraph)
	assert.Empty(t, m.StructureIssues)
}

func TestAnalyze_CountsSentencesAndParagraphs(t *testing.T) {
	text := "One two three. Four five.\n\nSix seven eight nine."
	m := Analyze(text)
	assert.Equal(t, 9, m.Words)
	assert.Equal(t, 3, m.Sentences)
	assert.Equal(t, 2, m.Paragraphs)
	assert.InDelta(t, 3.0, m.AvgWordsPerSentence, 1e-9)
	assert.InDelta(t, 4.5, m.AvgWordsPerParagraph, 1e-9)
}

func TestAnalyze_FlagsLongUnstructuredContent(t *testing.T) {
	text := strings.Repeat("word ", 210) + "."
	m := Analyze(text)
	assert.Contains(t, m.StructureIssues, "Sentences too long for easy reading")
	assert.Contains(t, m.StructureIssues, "Paragraphs too long for mobile reading")
	assert.Contains(t, m.StructureIssues, "Long content needs headers for better navigation")
}

func TestAnalyze_DetectsHeadersAndBullets(t *testing.T) {
	m := Analyze("# Title\n\n- first\n- second")
	assert.True(t, m.HasHeaders)
	assert.True(t, m.HasBullets)
}

func TestRawParagraphs_RoundTrips(t *testing.T) {
	text := "a\n\n\nb\n\n\n\nc\n"
	assert.Equal(t, text, JoinParagraphs(RawParagraphs(text)))
}

func TestSplitSections_GroupsBodiesUnderHeaders(t *testing.T) {
	content := "Intro line\n# Overview\nBody one\n## Details\nBody two\n"
	sections := SplitSections(content)
	require.Len(t, sections, 3)
	assert.Equal(t, "Introduction", sections[0].Title)
	assert.Equal(t, "Overview", sections[1].Title)
	assert.Equal(t, 1, sections[1].Level)
	assert.Equal(t, "Body two", sections[2].Body)
	assert.Equal(t, []string{"Overview", "Details"}, Headers(content))
}
