package brief

import (
	"testing"

	"contentteam/internal/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor() *Extractor {
	return New(lexicon.DefaultRegional())
}

func TestExtract_RestaurantBrief(t *testing.T) {
	b := newExtractor().Extract("Restaurant Name: Spice Route, Location: Bandra West, Mumbai")

	assert.Equal(t, "Spice Route", b.BusinessName)
	assert.Contains(t, b.Location, "Bandra West, Mumbai")
	assert.Equal(t, "food", b.Industry)
	assert.Equal(t, []string{"mumbai"}, b.RegionalFocus)
	assert.Equal(t, []string{"metro_cities"}, b.MarketTiers)
	assert.Equal(t, lexicon.Offering("food"), b.Offering)
}

func TestExtract_Defaults(t *testing.T) {
	b := newExtractor().Extract("")

	assert.Equal(t, "Your Business", b.BusinessName)
	assert.Equal(t, "India", b.Location)
	assert.Equal(t, "₹200-500", b.PriceRange)
	assert.Equal(t, "25-35", b.TargetAgeRange)
	assert.Equal(t, "general", b.Industry)
	assert.Equal(t, "unknown", b.BusinessType)
	assert.Equal(t, "general_content", b.ContentType)
	assert.Equal(t, []string{"middle_class_families"}, b.AudienceSegments)
	assert.Empty(t, b.RegionalFocus)
	assert.Empty(t, b.KeyRequirements)
	assert.Len(t, b.CulturalConsiderations, 4)
}

func TestExtract_CompanyAndPrice(t *testing.T) {
	b := newExtractor().Extract("Company: Acme Tech\nLocation: Pune\nTarget audience aged 18-24, budget ₹300-800")

	assert.Equal(t, "Acme Tech", b.BusinessName)
	assert.Equal(t, "Pune", b.Location)
	assert.Equal(t, "₹300-800", b.PriceRange)
	assert.Equal(t, "18-24", b.TargetAgeRange)
	assert.Equal(t, "technology", b.Industry)
	assert.Equal(t, []string{"tier_2_cities"}, b.MarketTiers)
}

func TestExtract_LocationFromInClause(t *testing.T) {
	b := newExtractor().Extract("A new cafe in koramangala, bangalore")
	assert.Equal(t, "Koramangala", b.Location)
}

func TestExtract_LocationStopsAtNextDetail(t *testing.T) {
	cases := map[string]string{
		"Restaurant Name: Spice Route, Location: Bandra West, Mumbai, price ₹300-800 for families": "Bandra West, Mumbai",
		"Location: Koregaon Park, Pune, targeting young professionals":                             "Koregaon Park, Pune",
		"Location: Indiranagar, Bangalore, for working couples":                                    "Indiranagar, Bangalore",
		"Location: Jaipur Business Name: Royal Rasoi":                                              "Jaipur",
		"Location: Anna Nagar, Chennai; budget ₹500-900":                                           "Anna Nagar, Chennai",
	}
	for text, want := range cases {
		assert.Equal(t, want, newExtractor().Extract(text).Location, text)
	}
}

func TestExtract_AgeFallbackTakesFirstRange(t *testing.T) {
	// The generic range rule is order-sensitive: without an explicit age
	// phrase the first numeric range wins, even a price.
	b := newExtractor().Extract("Budget ₹300-800 for families")
	assert.Equal(t, "300-800", b.TargetAgeRange)
	assert.Equal(t, []string{"families_with_children"}, b.AudienceSegments)
}

func TestExtract_RuleOrderMatters(t *testing.T) {
	text := "Company: Second Co, Restaurant Name: First Kitchen"
	assert.Equal(t, "First Kitchen", newExtractor().Field(text, FieldBusinessName))

	rules := DefaultRules()
	name := rules[0]
	name.Rules = []Rule{name.Rules[3], name.Rules[0]}
	e := newExtractor().WithRules([]FieldRules{name})
	assert.Equal(t, "Second Co", e.Field(text, FieldBusinessName))
	assert.Equal(t, "", e.Field(text, FieldLocation))
}

func TestRegionalFocus_ExpandsRegions(t *testing.T) {
	got := RegionalFocus("serving south india and bombay")
	assert.Equal(t, []string{"bangalore", "chennai", "hyderabad", "kerala", "mumbai"}, got)
}

func TestCulturalConsiderations(t *testing.T) {
	got := CulturalConsiderations("a family business diwali campaign for ganesh chaturthi")
	assert.Contains(t, got, "integrate_diwali_themes")
	assert.Contains(t, got, "integrate_ganesh_chaturthi_themes")
	assert.Contains(t, got, "generational_respect")
	assert.Contains(t, got, "mobile_first_consumption")
	assert.IsNonDecreasing(t, got)
}

func TestDefineSuccessMetrics(t *testing.T) {
	m := DefineSuccessMetrics("blog for leads")
	require.Len(t, m.Engagement, 3)
	assert.Equal(t, "page_views", m.Engagement[0])
	assert.Contains(t, m.Business, "inquiry_calls")
	assert.Len(t, m.Quality, 4)
}

func TestExtract_Requirements(t *testing.T) {
	b := newExtractor().Extract("Instagram posts in Hindi for our Diwali festival sale")
	assert.Contains(t, b.KeyRequirements, "instagram_optimized_content")
	assert.Contains(t, b.KeyRequirements, "hindi_integration")
	assert.Contains(t, b.KeyRequirements, "festival_themed_content")
	assert.Equal(t, "social_media_campaign", b.ContentType)
}
