package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsTerm_RespectsWordBoundaries(t *testing.T) {
	assert.True(t, ContainsTerm("we are based in pune.", "pune"))
	assert.False(t, ContainsTerm("an opportune moment", "pune"))
	assert.True(t, ContainsTerm("poor people deserve respect", "poor people"))
	assert.False(t, ContainsTerm("a retail store", "ai"))
	assert.True(t, ContainsTerm("only ₹499", "₹"))
}

func TestCountTerm_NonOverlapping(t *testing.T) {
	assert.Equal(t, 2, CountTerm("you and you, but not yours", "you"))
	assert.Equal(t, 3, CountTerm("wow! really! yes!", "!"))
	assert.Equal(t, 0, CountTerm("anything", ""))
}

func TestClassify_FirstBucketWins(t *testing.T) {
	assert.Equal(t, "technology", Classify("a software restaurant app", Industries, "general"))
	assert.Equal(t, "food", Classify("a family restaurant", Industries, "general"))
	assert.Equal(t, "general", Classify("something else entirely", Industries, "general"))
}

func TestLookups_FallBackToDefaults(t *testing.T) {
	assert.Equal(t, defaultUSPs, USPs("unknown"))
	assert.Len(t, USPs("food"), 3)
	assert.Equal(t, "premium products and services", Offering("unknown"))
	assert.Nil(t, SecondaryKeywords("unknown"))
}

func TestRegional_SegmentOf(t *testing.T) {
	r := DefaultRegional()
	assert.Equal(t, SegmentMetro, r.SegmentOf("mumbai"))
	assert.Equal(t, SegmentTier2, r.SegmentOf("pune"))
	assert.Equal(t, SegmentTier3, r.SegmentOf("agra"))
	assert.Equal(t, SegmentUnknown, r.SegmentOf("atlantis"))
}

func TestRegional_MergeKeepsOverrides(t *testing.T) {
	r := Regional{TargetRegions: []string{"kochi"}}.Merge(DefaultRegional())
	assert.Equal(t, []string{"kochi"}, r.TargetRegions)
	assert.Equal(t, "INR", r.CulturalContext.Currency)
	assert.NotEmpty(t, r.MarketSegments.Metros)
}
