package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQs_OneTemplatePerQuestion(t *testing.T) {
	faqs := FAQs([]string{"biryani", "thali"})
	require.Len(t, faqs, 3)
	assert.Equal(t, "What is the best biryani?", faqs[0].Question)
	assert.Equal(t, "How much does thali cost?", faqs[1].Question)
	assert.Equal(t, "Where can I find biryani near me?", faqs[2].Question)
	assert.Contains(t, faqs[1].Answer, "Contact us for detailed pricing information.")

	assert.Empty(t, FAQs(nil))
}

func TestFAQSection(t *testing.T) {
	got := FAQSection(FAQs([]string{"biryani"}))
	assert.Equal(t, "## Frequently Asked Questions\n\n"+
		"**Q: What is the best biryani?**\n"+
		"A: The best biryani depends on your specific needs and location. We provide personalized recommendations based on your requirements.\n\n"+
		"**Q: How much does biryani cost?**\n"+
		"A: The cost of biryani varies based on several factors. Contact us for detailed pricing information.\n\n"+
		"**Q: Where can I find biryani near me?**\n"+
		"A: We offer biryani services across multiple locations. Use our location finder to find the nearest service center.", got)
	assert.True(t, HasFAQ(got))
	assert.Empty(t, FAQSection(nil))
}

func TestHasFAQ(t *testing.T) {
	assert.True(t, HasFAQ("## FAQ\n\nAsk us anything."))
	assert.False(t, HasFAQ("Our faqir thali is famous."))
}

func TestContentHeaders(t *testing.T) {
	got := ContentHeaders([]string{"biryani"}, []string{"family restaurant", "home delivery"})
	assert.Equal(t, []string{
		"H1: Complete Guide to Biryani in India",
		"H2: Why Choose Family Restaurant?",
		"H2: Best Home Delivery Services in Your City",
		"H2: How to Find Reliable Biryani Providers",
		"H3: Benefits for Indian Families",
		"H3: Pricing and Packages",
		"H3: Customer Reviews and Testimonials",
		"H3: Frequently Asked Questions",
		"H3: Contact Information and Booking",
	}, got)

	assert.Len(t, ContentHeaders(nil, []string{"one"}), 5)
}

func TestSchema_DefaultsAndFAQPage(t *testing.T) {
	m := Schema(Business{Industry: "food"}, []string{"pune"}, FAQs([]string{"chai"}))

	assert.Equal(t, "Your Business", m.LocalBusiness.Name)
	assert.Equal(t, "Professional food services in India", m.LocalBusiness.Description)
	assert.Equal(t, "Pune", m.LocalBusiness.Address.Locality)
	assert.Equal(t, "IN", m.LocalBusiness.Address.Country)
	assert.Equal(t, "₹₹", m.LocalBusiness.PriceRange)
	assert.Equal(t, []string{"English", "Hindi"}, m.Organization.ContactPoint.AvailableLanguage)
	require.NotNil(t, m.FAQPage)
	assert.Equal(t, "What is the best chai?", m.FAQPage.MainEntity[0].Name)

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "https://schema.org", doc["local_business"]["@context"])
	assert.Equal(t, "LocalBusiness", doc["local_business"]["@type"])
	assert.NotContains(t, doc["local_business"], "telephone")
	assert.Equal(t, "FAQPage", doc["faq_page"]["@type"])
}

func TestSchema_BusinessDetailsAndNoFAQ(t *testing.T) {
	m := Schema(Business{
		Name:       "Spice Route",
		City:       "Bandra West, Mumbai",
		PriceRange: "₹300-800",
		Phone:      "+91-22-5555-0101",
		Website:    "https://spiceroute.example",
	}, []string{"delhi"}, nil)

	assert.Equal(t, "Spice Route", m.Organization.Name)
	assert.Equal(t, "Bandra West, Mumbai", m.LocalBusiness.Address.Locality)
	assert.Equal(t, "Professional services in India", m.LocalBusiness.Description)
	assert.Equal(t, "+91-22-5555-0101", m.Organization.ContactPoint.Telephone)
	assert.Equal(t, "https://spiceroute.example", m.LocalBusiness.URL)
	assert.Nil(t, m.FAQPage)
}

func TestAnalyze_StructuredSuggestions(t *testing.T) {
	r := New(DefaultConfig()).Analyze(sample, []string{"biryani"}, []string{"mumbai"}, "food")

	assert.Len(t, r.FAQ, 3)
	assert.False(t, r.HasFAQ)
	assert.Contains(t, r.Recommendations, "Add FAQ section optimized for voice search queries")
	assert.Equal(t, "H1: Complete Guide to Biryani in India", r.SuggestedHeaders[0])
	assert.Equal(t, "H2: Why Choose Restaurant Near Me?", r.SuggestedHeaders[1])
	assert.Equal(t, "Mumbai", r.Schema.LocalBusiness.Address.Locality)
	require.NotNil(t, r.Schema.FAQPage)

	withFAQ := sample + "\n\n" + FAQSection(r.FAQ)
	r = New(DefaultConfig()).Analyze(withFAQ, []string{"biryani"}, []string{"mumbai"}, "food")
	assert.True(t, r.HasFAQ)
	assert.NotContains(t, r.Recommendations, "Add FAQ section optimized for voice search queries")
}
