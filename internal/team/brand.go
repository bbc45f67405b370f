package team

import (
	"slices"
	"strings"

	"contentteam/internal/brief"
	"contentteam/internal/lexicon"
)

type Archetype struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Voice          []string `json:"voice_characteristics"`
	MessagingFocus string   `json:"messaging_focus"`
}

type Positioning struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	MessagingFocus string `json:"messaging_focus"`
}

// BrandAnalysis is the positioning context handed to the team with the brief.
type BrandAnalysis struct {
	Industry      string      `json:"industry"`
	Audience      string      `json:"target_audience"`
	Budget        string      `json:"budget_range"`
	RegionalFocus string      `json:"regional_focus"`
	Positioning   Positioning `json:"positioning"`
	Archetype     Archetype   `json:"archetype"`
	BrandPromise  string      `json:"brand_promise"`
	PrimaryVoice  []string    `json:"primary_voice"`
	AvoidTones    []string    `json:"avoid_tones"`
	CulturalHooks []string    `json:"cultural_hooks"`
	TrustPrimary  []string    `json:"trust_primary_focus"`
	TrustExtra    []string    `json:"trust_secondary_focus"`
}

var archetypes = map[string]Archetype{
	"family_guardian": {
		Name:           "family_guardian",
		Description:    "Protects and nurtures family welfare and security",
		Voice:          []string{"warm", "reassuring", "knowledgeable", "trustworthy"},
		MessagingFocus: "Family safety, security, and prosperity",
	},
	"trusted_advisor": {
		Name:           "trusted_advisor",
		Description:    "Provides expert guidance and wise counsel",
		Voice:          []string{"authoritative", "educational", "supportive", "clear"},
		MessagingFocus: "Expert advice, informed decisions, long-term benefits",
	},
	"community_builder": {
		Name:           "community_builder",
		Description:    "Brings people together and strengthens social bonds",
		Voice:          []string{"friendly", "engaging", "enthusiastic", "unifying"},
		MessagingFocus: "Community growth, shared success, collective prosperity",
	},
	"heritage_keeper": {
		Name:           "heritage_keeper",
		Description:    "Preserves tradition while embracing positive change",
		Voice:          []string{"dignified", "respectful", "storytelling", "thoughtful"},
		MessagingFocus: "Traditional values, authentic quality, time-tested excellence",
	},
	"progress_enabler": {
		Name:           "progress_enabler",
		Description:    "Helps individuals and families achieve their aspirations",
		Voice:          []string{"encouraging", "optimistic", "goal-oriented", "empowering"},
		MessagingFocus: "Growth, achievement, success, future opportunities",
	},
}

var positionings = map[string]Positioning{
	"market_leader": {
		Name:           "market_leader",
		Description:    "Established leader with proven track record",
		MessagingFocus: "India's most trusted choice",
	},
	"innovative_challenger": {
		Name:           "innovative_challenger",
		Description:    "New approach challenging traditional methods",
		MessagingFocus: "The smart, modern choice for progressive families",
	},
	"specialist_expert": {
		Name:           "specialist_expert",
		Description:    "Deep expertise in specific area or niche",
		MessagingFocus: "Specialized expertise for your specific needs",
	},
	"local_champion": {
		Name:           "local_champion",
		Description:    "Strong local presence and community connection",
		MessagingFocus: "Your neighborhood's trusted partner",
	},
}

const (
	trustPricing      = "Clear, upfront pricing with no hidden costs"
	trustTestimonials = "Real stories from satisfied Indian customers"
	trustPersonal     = "Building personal relationships with customers"
	trustHeritage     = "Demonstrating years of experience and expertise"
	trustCommunity    = "Recognition from local communities and organizations"
)

var culturalHooks = []string{
	"Family welfare and prosperity",
	"Community respect and social contribution",
	"Traditional values with modern solutions",
	"Long-term relationships over transactions",
}

// AnalyzeBrand derives positioning, archetype and trust strategy from an
// extracted brief. It is rule-based and deterministic.
func AnalyzeBrand(b brief.ContentBrief) BrandAnalysis {
	a := BrandAnalysis{
		Industry:      b.Industry,
		Audience:      "middle_class_families",
		Budget:        budgetRange(b.Text),
		RegionalFocus: regionalFocus(b.MarketTiers),
		AvoidTones:    []string{"arrogant", "condescending", "foreign", "impersonal"},
		CulturalHooks: culturalHooks,
		TrustExtra:    []string{trustHeritage, trustCommunity},
	}
	if len(b.AudienceSegments) > 0 {
		a.Audience = b.AudienceSegments[0]
	}

	a.Positioning = positioningFor(a.Industry, a.Audience, a.Budget, a.RegionalFocus)
	a.Archetype = archetypeFor(a.Industry, a.Audience)
	a.BrandPromise = a.Positioning.MessagingFocus + " with " + a.Archetype.MessagingFocus
	a.PrimaryVoice = a.Archetype.Voice[:2]

	a.TrustPrimary = []string{}
	if a.Budget == "low" {
		a.TrustPrimary = append(a.TrustPrimary, trustPricing, trustTestimonials)
	}
	if a.RegionalFocus == "tier_2" || a.RegionalFocus == "tier_3" {
		a.TrustPrimary = append(a.TrustPrimary, trustPersonal)
	}
	return a
}

// TrustFocus is the lead trust-building theme, or relationship building when
// the brief suggests none.
func (a BrandAnalysis) TrustFocus() string {
	if len(a.TrustPrimary) == 0 {
		return "relationship building"
	}
	return a.TrustPrimary[0]
}

func positioningFor(industry, audience, budget, regional string) Positioning {
	switch {
	case budget == "premium" && audience == "affluent_families":
		return positionings["market_leader"]
	case (industry == "technology" || industry == "startups") && audience == "young_professionals":
		return positionings["innovative_challenger"]
	case regional == "tier_2" || regional == "tier_3" || regional == "local":
		return positionings["local_champion"]
	default:
		return positionings["specialist_expert"]
	}
}

func archetypeFor(industry, audience string) Archetype {
	switch {
	case industry == "insurance" || industry == "healthcare" || industry == "education":
		return archetypes["family_guardian"]
	case industry == "technology" || industry == "professional_services":
		return archetypes["trusted_advisor"]
	case industry == "food" || industry == "traditional_crafts":
		return archetypes["heritage_keeper"]
	case audience == "young_professionals" || audience == "students":
		return archetypes["progress_enabler"]
	default:
		return archetypes["community_builder"]
	}
}

func budgetRange(text string) string {
	lower := strings.ToLower(text)
	switch {
	case lexicon.ContainsAny(lower, []string{"premium", "luxury", "high-end"}):
		return "premium"
	case lexicon.ContainsAny(lower, []string{"budget", "affordable", "cheap"}):
		return "low"
	default:
		return "medium"
	}
}

// regionalFocus picks the narrowest tier the brief targets. Metro-only or
// untargeted briefs are pan-India.
func regionalFocus(tiers []string) string {
	switch {
	case slices.Contains(tiers, "tier_3_cities"):
		return "tier_3"
	case slices.Contains(tiers, "tier_2_cities"):
		return "tier_2"
	default:
		return "pan_india"
	}
}
