// Package brief pulls structured fields out of a free-text campaign brief.
// Extraction never fails: every field falls back to a named default.
package brief

import (
	"slices"
	"strings"

	"contentteam/internal/lexicon"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SuccessMetrics struct {
	Engagement []string `json:"engagement_metrics"`
	Business   []string `json:"business_metrics"`
	Quality    []string `json:"quality_metrics"`
}

// ContentBrief is the brief text plus everything derived from it.
type ContentBrief struct {
	Text                   string         `json:"brief_text"`
	BusinessName           string         `json:"business_name"`
	Location               string         `json:"location"`
	PriceRange             string         `json:"price_range"`
	TargetAgeRange         string         `json:"target_age_range"`
	Industry               string         `json:"industry"`
	BusinessType           string         `json:"business_type"`
	ContentType            string         `json:"content_type"`
	AudienceSegments       []string       `json:"audience_segments"`
	RegionalFocus          []string       `json:"regional_focus"`
	MarketTiers            []string       `json:"market_tiers"`
	KeyRequirements        []string       `json:"key_requirements"`
	CulturalConsiderations []string       `json:"cultural_considerations"`
	SuccessMetrics         SuccessMetrics `json:"success_metrics"`
	Offering               string         `json:"offering"`
	USPs                   []string       `json:"unique_selling_points"`
}

// Extractor applies the field rule chains and lexicon classifiers.
type Extractor struct {
	rules    []FieldRules
	regional lexicon.Regional
}

// New builds an Extractor with the default rule chains. The regional value
// decides which cities count as metro, tier 2 or tier 3.
func New(regional lexicon.Regional) *Extractor {
	return &Extractor{
		rules:    DefaultRules(),
		regional: regional.Merge(lexicon.DefaultRegional()),
	}
}

// WithRules replaces the field chains. A field with no chain extracts as "".
func (e *Extractor) WithRules(rules []FieldRules) *Extractor {
	e.rules = rules
	return e
}

// Field runs a single field chain against text.
func (e *Extractor) Field(text string, field Field) string {
	lower := strings.ToLower(text)
	for _, fr := range e.rules {
		if fr.Field != field {
			continue
		}
		v, _ := fr.apply(lower)
		if fr.TitleCase {
			v = cases.Title(language.English).String(v)
		}
		return v
	}
	return ""
}

func (e *Extractor) Extract(text string) ContentBrief {
	lower := strings.ToLower(text)

	b := ContentBrief{
		Text:           text,
		BusinessName:   e.Field(text, FieldBusinessName),
		Location:       e.Field(text, FieldLocation),
		PriceRange:     e.Field(text, FieldPriceRange),
		TargetAgeRange: e.Field(text, FieldTargetAge),
		Industry:       lexicon.Classify(lower, lexicon.Industries, "general"),
		BusinessType:   lexicon.Classify(lower, lexicon.BusinessTypes, "unknown"),
		ContentType:    lexicon.Classify(lower, lexicon.ContentTypes, "general_content"),
	}

	b.AudienceSegments = lexicon.ClassifyAll(lower, lexicon.Audiences)
	if len(b.AudienceSegments) == 0 {
		b.AudienceSegments = []string{"middle_class_families"}
	}
	b.RegionalFocus = RegionalFocus(lower)
	b.MarketTiers = e.marketTiers(lower, b.RegionalFocus)
	b.KeyRequirements = nonNil(lexicon.ClassifyAll(lower, lexicon.Requirements))
	b.CulturalConsiderations = CulturalConsiderations(lower)
	b.SuccessMetrics = DefineSuccessMetrics(lower)
	b.Offering = lexicon.Offering(b.Industry)
	b.USPs = lexicon.USPs(b.Industry)
	return b
}

// RegionalFocus returns the sorted, de-duplicated cities and places named in
// a lowercased brief, expanding broad regions like "south india".
func RegionalFocus(lower string) []string {
	var regions []string
	for _, cv := range lexicon.CityVariants {
		if lexicon.ContainsAny(lower, cv.Variants) {
			regions = append(regions, cv.City)
		}
	}
	for _, re := range lexicon.RegionExpansions {
		if lexicon.ContainsAny(lower, re.Phrases) {
			regions = append(regions, re.Places...)
		}
	}
	slices.Sort(regions)
	return nonNil(slices.Compact(regions))
}

func (e *Extractor) marketTiers(lower string, cities []string) []string {
	var tiers []string
	if lexicon.ContainsAny(lower, []string{"metro", "metros"}) {
		tiers = append(tiers, "metro_cities")
	}
	if lexicon.ContainsAny(lower, []string{"tier-2", "tier 2", "tier2"}) {
		tiers = append(tiers, "tier_2_cities")
	}
	if lexicon.ContainsAny(lower, []string{"tier-3", "tier 3", "tier3"}) {
		tiers = append(tiers, "tier_3_cities")
	}
	for _, city := range cities {
		switch e.regional.SegmentOf(city) {
		case lexicon.SegmentMetro:
			tiers = append(tiers, "metro_cities")
		case lexicon.SegmentTier2:
			tiers = append(tiers, "tier_2_cities")
		case lexicon.SegmentTier3:
			tiers = append(tiers, "tier_3_cities")
		}
	}
	slices.Sort(tiers)
	return nonNil(slices.Compact(tiers))
}

// CulturalConsiderations lists the cultural angles a lowercased brief calls
// for. The Indian-market baseline is always included.
func CulturalConsiderations(lower string) []string {
	var out []string
	for _, f := range lexicon.Festivals {
		if lexicon.ContainsTerm(lower, f) {
			out = append(out, "integrate_"+strings.ReplaceAll(f, " ", "_")+"_themes")
		}
	}
	if lexicon.ContainsTerm(lower, "south indian") {
		out = append(out, "south_indian_cultural_references", "tamil_telugu_cultural_context", "traditional_south_indian_values")
	}
	if lexicon.ContainsTerm(lower, "north indian") {
		out = append(out, "north_indian_cultural_references", "hindi_cultural_context", "punjabi_haryanvi_influences")
	}
	if lexicon.ContainsTerm(lower, "family business") {
		out = append(out, "family_values_emphasis", "trust_building_focus", "generational_respect")
	}
	if lexicon.ContainsTerm(lower, "startup") {
		out = append(out, "innovation_emphasis", "young_professional_culture", "tech_savvy_audience")
	}
	out = append(out,
		"mobile_first_consumption",
		"price_value_sensitivity",
		"social_proof_importance",
		"family_decision_making_influence",
	)
	slices.Sort(out)
	return slices.Compact(out)
}

func DefineSuccessMetrics(lower string) SuccessMetrics {
	m := SuccessMetrics{Engagement: []string{}, Business: []string{}}
	if lexicon.ContainsTerm(lower, "social media") {
		m.Engagement = append(m.Engagement, "likes_comments_shares", "reach_impressions", "follower_growth")
	}
	if lexicon.ContainsTerm(lower, "blog") {
		m.Engagement = append(m.Engagement, "page_views", "time_on_page", "social_shares")
	}
	if lexicon.ContainsAny(lower, []string{"sales", "revenue"}) {
		m.Business = append(m.Business, "conversion_rate", "sales_increase", "revenue_growth")
	}
	if lexicon.ContainsTerm(lower, "leads") {
		m.Business = append(m.Business, "lead_generation", "contact_form_submissions", "inquiry_calls")
	}
	m.Quality = []string{
		"cultural_appropriateness_score_95_plus",
		"readability_score_85_plus",
		"indian_context_integration",
		"mobile_optimization_score_85_plus",
	}
	return m
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
