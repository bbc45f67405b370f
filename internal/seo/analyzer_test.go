package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const sample = "## Best Biryani\n\nOur biryani in Mumbai is famous."

func TestVariations_UsesTopRegions(t *testing.T) {
	got := New(DefaultConfig()).Variations([]string{"biryani"}, []string{"mumbai", "pune", "delhi"})
	assert.Len(t, got, 12)
	assert.Equal(t, "biryani", got[0])
	assert.Contains(t, got, "biryani in pune")
	assert.Contains(t, got, "best biryani")
	assert.Contains(t, got, "biryani home delivery")
	assert.NotContains(t, got, "biryani in delhi")
}

func TestAnalyze(t *testing.T) {
	r := New(DefaultConfig()).Analyze(sample, []string{" Biryani "}, []string{"Mumbai"}, "food")

	assert.Len(t, r.PrimaryKeywords, 9)
	assert.Len(t, r.LocalKeywords, 4)
	assert.Len(t, r.VoiceKeywords, 12)
	assert.Equal(t, 100.0, r.Score)
	assert.Equal(t, []string{"Best Biryani"}, r.Headers)
	assert.Len(t, r.SecondaryKeywords, 5)
	assert.Equal(t, "Medium", r.LocalPotential)

	require.Len(t, r.Usage, 1)
	assert.Equal(t, 2, r.Usage[0].Occurrences)
	assert.InDelta(t, 22.22, r.Usage[0].Density, 0.001)
	assert.True(t, r.Usage[0].InFirstParagraph)

	assert.Equal(t, "Biryani in Mumbai | Trusted Service Provider", r.Meta.Title)
	assert.True(t, strings.HasPrefix(r.Meta.Description, "## Best Biryani\n\nOur biryani in Mumbai is famous. Expert biryani"))
	assert.Contains(t, r.Recommendations, "Expand local keyword targeting for better regional visibility")
	assert.Contains(t, r.Recommendations, "Reduce repetition of 'biryani' (22.22% density)")
}

func TestAnalyze_NoKeywords(t *testing.T) {
	r := New(DefaultConfig()).Analyze("Plain text.", nil, nil, "unknown")
	assert.Equal(t, 0.0, r.Score)
	assert.Empty(t, r.PrimaryKeywords)
	assert.Empty(t, r.SecondaryKeywords)
	assert.Contains(t, r.Meta.Title, "India")
	assert.Contains(t, r.Recommendations, "Add more primary keywords focused on Indian market search terms")
	assert.Contains(t, r.Recommendations, "Add relevant headers (H2, H3) with Indian keywords for better search visibility")
}

func TestUsage_MissingKeyword(t *testing.T) {
	u := Usage("Fresh dosa every morning.", []string{"idli"})
	require.Len(t, u, 1)
	assert.Zero(t, u[0].Occurrences)
	assert.Zero(t, u[0].Density)
	assert.False(t, u[0].InFirstParagraph)
}

func TestUsage_WholeWordsOnly(t *testing.T) {
	u := Usage("Our retail stores", []string{"ai"})
	assert.Zero(t, u[0].Occurrences)
}

func TestMeta_LengthLimits(t *testing.T) {
	a := New(DefaultConfig())
	rapid.Check(t, func(rt *rapid.T) {
		kw := rapid.StringMatching(`[a-z ]{1,80}`).Draw(rt, "keyword")
		region := rapid.StringMatching(`[a-z]{1,30}`).Draw(rt, "region")
		content := rapid.StringMatching(`[A-Za-z .]{0,300}`).Draw(rt, "content")

		r := a.Analyze(content, []string{kw}, []string{region}, "food")
		assert.LessOrEqual(rt, utf8.RuneCountInString(r.Meta.Title), 60)
		assert.LessOrEqual(rt, utf8.RuneCountInString(r.Meta.Description), 160)
		assert.LessOrEqual(rt, r.Score, 100.0)
	})
}
