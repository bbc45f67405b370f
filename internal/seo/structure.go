package seo

import (
	"fmt"
	"strings"

	"contentteam/internal/lexicon"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FAQ is one question and answer aimed at long-tail and voice queries.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqTemplates = []struct{ question, answer string }{
	{"What is the best %s?", "The best %s depends on your specific needs and location. We provide personalized recommendations based on your requirements."},
	{"How much does %s cost?", "The cost of %s varies based on several factors. Contact us for detailed pricing information."},
	{"Where can I find %s near me?", "We offer %s services across multiple locations. Use our location finder to find the nearest service center."},
}

// FAQs fills one question per template. Templates beyond the number of
// keywords reuse them in order, so any keyword yields a full set.
func FAQs(keywords []string) []FAQ {
	if len(keywords) == 0 {
		return []FAQ{}
	}
	out := make([]FAQ, 0, len(faqTemplates))
	for i, t := range faqTemplates {
		kw := keywords[i%len(keywords)]
		out = append(out, FAQ{
			Question: fmt.Sprintf(t.question, kw),
			Answer:   fmt.Sprintf(t.answer, kw),
		})
	}
	return out
}

// FAQSection renders faqs as a Markdown section ready to append to content.
func FAQSection(faqs []FAQ) string {
	if len(faqs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Frequently Asked Questions\n\n")
	for _, f := range faqs {
		fmt.Fprintf(&sb, "**Q: %s**\nA: %s\n\n", f.Question, f.Answer)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// HasFAQ reports whether content already carries a FAQ section.
func HasFAQ(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "frequently asked") || lexicon.ContainsTerm(lower, "faq") || lexicon.ContainsTerm(lower, "faqs")
}

// ContentHeaders suggests an H1/H2/H3 outline built around the keywords.
// The H2 block needs at least two secondary keywords.
func ContentHeaders(primary, secondary []string) []string {
	caser := cases.Title(language.English)
	var headers []string
	if len(primary) > 0 {
		headers = append(headers, fmt.Sprintf("H1: Complete Guide to %s in India", caser.String(primary[0])))
	}
	if len(secondary) >= 2 {
		provider := "Service"
		if len(primary) > 0 {
			provider = caser.String(primary[0])
		}
		headers = append(headers,
			fmt.Sprintf("H2: Why Choose %s?", caser.String(secondary[0])),
			fmt.Sprintf("H2: Best %s Services in Your City", caser.String(secondary[1])),
			fmt.Sprintf("H2: How to Find Reliable %s Providers", provider),
		)
	}
	return append(headers,
		"H3: Benefits for Indian Families",
		"H3: Pricing and Packages",
		"H3: Customer Reviews and Testimonials",
		"H3: Frequently Asked Questions",
		"H3: Contact Information and Booking",
	)
}

// Business describes the organisation behind the content. Empty fields get
// neutral defaults or are left out of the markup.
type Business struct {
	Name        string
	Description string
	City        string
	PriceRange  string
	Phone       string
	Website     string
	Industry    string
}

const schemaContext = "https://schema.org"

type PostalAddress struct {
	Type     string `json:"@type"`
	Locality string `json:"addressLocality,omitempty"`
	Country  string `json:"addressCountry"`
}

type LocalBusinessSchema struct {
	Context      string        `json:"@context"`
	Type         string        `json:"@type"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Address      PostalAddress `json:"address"`
	Telephone    string        `json:"telephone,omitempty"`
	URL          string        `json:"url,omitempty"`
	OpeningHours string        `json:"openingHours"`
	PriceRange   string        `json:"priceRange"`
}

type ContactPoint struct {
	Type              string   `json:"@type"`
	Telephone         string   `json:"telephone,omitempty"`
	ContactType       string   `json:"contactType"`
	AvailableLanguage []string `json:"availableLanguage"`
}

type OrganizationSchema struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	Name         string       `json:"name"`
	URL          string       `json:"url,omitempty"`
	ContactPoint ContactPoint `json:"contactPoint"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQPageSchema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// SchemaMarkup is the JSON-LD structured data for a page.
type SchemaMarkup struct {
	LocalBusiness LocalBusinessSchema `json:"local_business"`
	Organization  OrganizationSchema  `json:"organization"`
	FAQPage       *FAQPageSchema      `json:"faq_page,omitempty"`
}

// Schema builds LocalBusiness and Organization markup for b, plus FAQPage
// markup when there are faqs. The first region stands in for a missing city.
func Schema(b Business, regions []string, faqs []FAQ) SchemaMarkup {
	caser := cases.Title(language.English)
	name := strings.TrimSpace(b.Name)
	if name == "" {
		name = "Your Business"
	}
	desc := strings.TrimSpace(b.Description)
	if desc == "" {
		desc = "Professional services in India"
		if ind := strings.TrimSpace(b.Industry); ind != "" && ind != "general" {
			desc = fmt.Sprintf("Professional %s services in India", ind)
		}
	}
	city := strings.TrimSpace(b.City)
	if city == "" && len(regions) > 0 {
		city = caser.String(regions[0])
	}
	price := strings.TrimSpace(b.PriceRange)
	if price == "" {
		price = "₹₹"
	}

	m := SchemaMarkup{
		LocalBusiness: LocalBusinessSchema{
			Context:      schemaContext,
			Type:         "LocalBusiness",
			Name:         name,
			Description:  desc,
			Address:      PostalAddress{Type: "PostalAddress", Locality: city, Country: "IN"},
			Telephone:    b.Phone,
			URL:          b.Website,
			OpeningHours: "Mo-Sa 10:00-19:00",
			PriceRange:   price,
		},
		Organization: OrganizationSchema{
			Context: schemaContext,
			Type:    "Organization",
			Name:    name,
			URL:     b.Website,
			ContactPoint: ContactPoint{
				Type:              "ContactPoint",
				Telephone:         b.Phone,
				ContactType:       "customer service",
				AvailableLanguage: []string{"English", "Hindi"},
			},
		},
	}
	if len(faqs) > 0 {
		page := &FAQPageSchema{Context: schemaContext, Type: "FAQPage"}
		for _, f := range faqs {
			page.MainEntity = append(page.MainEntity, Question{
				Type:           "Question",
				Name:           f.Question,
				AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
			})
		}
		m.FAQPage = page
	}
	return m
}
