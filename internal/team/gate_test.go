package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Validate_PassingDraft(t *testing.T) {
	g := NewGate(nil, nil, nil)

	v := g.Validate(RoleWriter, "Celebrate Diwali at Spice Route in Mumbai. Call us to book your table!")
	assert.True(t, v.Passed)
	assert.Empty(t, v.Issues)
	assert.Empty(t, v.Suggestions)
	assert.Equal(t, RoleWriter, v.Role)
	assert.InDelta(t, (100+100+85+100+100)/5.0, v.Score, 1e-9)
	assert.Equal(t, "APPROVED", v.Status())
}

func TestGate_Validate_ReportsEachFailedStandard(t *testing.T) {
	g := NewGate(nil, nil, nil)

	v := g.Validate(RoleEditor, "Our primitive kitchen serves bread.")
	assert.False(t, v.Passed)
	assert.Equal(t, []string{
		"cultural_appropriateness: Score 0.0 below minimum 95",
		"local_relevance: Score 40.0 below minimum 80",
		"call_to_action: Score 0.0 below minimum 75",
	}, v.Issues)
	require.Len(t, v.Suggestions, 3)
	assert.Equal(t, "Improve call_to_action: Clear and appropriate CTAs for Indian market", v.Suggestions[2])
	assert.InDelta(t, (0+100+40+100+0)/5.0, v.Score, 1e-9)
}

func TestGate_Validate_UsesConfiguredMinimums(t *testing.T) {
	g := NewGate([]Standard{{Name: StandardLocalRelevance, Description: "local", MinScore: 30}}, nil, nil)

	v := g.Validate(RoleWriter, "Our primitive kitchen serves bread.")
	assert.True(t, v.Passed)
	assert.Len(t, v.Scores, 5)
}

func TestValidation_Summary(t *testing.T) {
	v := Validation{Score: 72.5, Issues: []string{"readability: Score 60.0 below minimum 85"}}
	assert.Equal(t, "Quality Gate: REVISION REQUIRED (score 72.5/100); readability: Score 60.0 below minimum 85", v.Summary())

	v = Validation{Passed: true, Score: 96}
	assert.Equal(t, "Quality Gate: APPROVED (score 96.0/100)", v.Summary())
}

func TestFeedbackMessage(t *testing.T) {
	g := NewGate(nil, nil, nil)
	failing := g.Validate(RoleSEO, "Our kitchen serves bread.")

	msg := FeedbackMessage(RoleSEO, failing)
	assert.Contains(t, msg, "FEEDBACK FOR SEO SPECIALIST")
	assert.Contains(t, msg, "Status: REVISION REQUIRED")
	assert.Contains(t, msg, "ISSUES TO ADDRESS:\n  local_relevance: Score 40.0 below minimum 80")
	assert.Contains(t, msg, "SEO SPECIALIST GUIDANCE:")
	assert.Contains(t, msg, "- Include local business schema markup suggestions")
	assert.Contains(t, msg, "Please revise and resubmit")

	passing := g.Validate(RoleBrand, "Celebrate Diwali in Mumbai. Call us today!")
	msg = FeedbackMessage(RoleBrand, passing)
	assert.Contains(t, msg, "Status: APPROVED")
	assert.NotContains(t, msg, "ISSUES TO ADDRESS")
	assert.Contains(t, msg, "- Verify community and social proof elements")
	assert.Contains(t, msg, "EXCELLENT WORK!")

	msg = FeedbackMessage(RoleProjectManager, passing)
	assert.NotContains(t, msg, "GUIDANCE")
}
