package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newAssessor() *Assessor {
	return New(DefaultConfig(), nil, nil, nil)
}

func TestScore_EmptyInput(t *testing.T) {
	s := newAssessor().Score("")
	assert.Equal(t, 0.0, s.Readability)
	assert.Equal(t, 0.0, s.Mobile)
	assert.Equal(t, 0.0, s.Engagement)
	assert.Equal(t, 40.0, s.Cultural)
	assert.InDelta(t, 12.0, s.Overall, 0.001)
}

func TestScore_WeightedOverall(t *testing.T) {
	s := newAssessor().Score("Do you love chai? We serve the best chai in Mumbai!")
	assert.Equal(t, 100.0, s.Readability)
	assert.Equal(t, 85.0, s.Cultural)
	assert.Equal(t, 100.0, s.Mobile)
	assert.Equal(t, 20.0, s.Engagement)
	assert.InDelta(t, 79.5, s.Overall, 0.001)
}

func TestScore_CustomWeightsAndCulturalPair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Cultural: 2}
	cfg.CulturalPresent, cfg.CulturalAbsent = 90, 10
	a := New(cfg, nil, nil, nil)

	assert.InDelta(t, 90.0, a.Score("Namaste India").Overall, 0.001)
	assert.InDelta(t, 10.0, a.Score("Hello world").Overall, 0.001)
}

func TestNew_InvalidWeightsFallBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{Readability: -1, Cultural: 2}
	a := New(cfg, nil, nil, nil)
	assert.Equal(t, DefaultConfig().Weights, a.cfg.Weights)
}

func TestEngagement_CountsWholeWords(t *testing.T) {
	a := newAssessor()
	assert.Equal(t, 15.0, a.Engagement("you your yours our"))
	assert.Equal(t, 0.0, a.Engagement("tour flour"))
	assert.Equal(t, 100.0, a.Engagement(strings.Repeat("you! ", 20)))
}

func TestRecommendations(t *testing.T) {
	a := newAssessor()

	recs := a.Recommendations("", a.Score(""))
	assert.Len(t, recs, 4)

	text := "Contact us for the price."
	recs = a.Recommendations(text, a.Score(text))
	assert.Contains(t, recs, "Ensure contact methods include WhatsApp and local phone numbers for Indian market")
	assert.Contains(t, recs, "Include Indian currency formatting and consider mentioning payment options like UPI")
}

func TestRecommendations_LongTextWithoutBullets(t *testing.T) {
	a := newAssessor()
	text := strings.Repeat("word ", 501)
	assert.Contains(t, a.Recommendations(text, a.Score(text)), "Consider adding bullet points or numbered lists for easier scanning")

	withBullets := "- first point\n" + text
	assert.NotContains(t, a.Recommendations(withBullets, a.Score(withBullets)), "Consider adding bullet points or numbered lists for easier scanning")
}

func TestAssess_Report(t *testing.T) {
	r := newAssessor().Assess("Visit Mumbai and Delhi this Diwali. What will you buy?")
	assert.Equal(t, 85.0, r.Scores.Cultural)
	assert.True(t, r.Cultural.RegionalBalance)
	assert.Equal(t, 10, r.Metrics.Words)

	m := r.Scores.ToMap()
	require.Len(t, m, 5)
	assert.Equal(t, r.Scores.Overall, m["overall_quality"])
}

func TestProperty_ScoresWithinBounds(t *testing.T) {
	a := newAssessor()
	words := []string{"you", "our", "Mumbai", "chai", "?", "!", "long", ".", "\n\n", "backward", "we"}
	rapid.Check(t, func(rt *rapid.T) {
		text := strings.Join(rapid.SliceOf(rapid.SampledFrom(words)).Draw(rt, "words"), " ")
		s := a.Score(text)
		for name, v := range s.ToMap() {
			assert.GreaterOrEqual(rt, v, 0.0, name)
			assert.LessOrEqual(rt, v, 100.0, name)
		}
	})
}
