package lexicon

import "slices"

// Segment is a market tier for a city.
type Segment string

const (
	SegmentMetro   Segment = "metro"
	SegmentTier2   Segment = "tier2"
	SegmentTier3   Segment = "tier3"
	SegmentUnknown Segment = "unknown"
)

type Languages struct {
	Primary   string   `yaml:"primary" json:"primary"`
	Secondary string   `yaml:"secondary" json:"secondary"`
	Regional  []string `yaml:"regional" json:"regional"`
}

type CulturalContext struct {
	Festivals     []string `yaml:"festivals" json:"festivals"`
	BusinessHours string   `yaml:"business_hours" json:"business_hours"`
	Currency      string   `yaml:"currency" json:"currency"`
	DateFormat    string   `yaml:"date_format" json:"date_format"`
}

type MarketSegments struct {
	Metros []string `yaml:"metros" json:"metros"`
	Tier2  []string `yaml:"tier2" json:"tier2"`
	Tier3  []string `yaml:"tier3" json:"tier3"`
}

// Regional describes the target market. It is a read-only value; callers
// that need different defaults construct their own copy.
type Regional struct {
	TargetRegions   []string        `yaml:"target_regions" json:"target_regions"`
	Languages       Languages       `yaml:"languages" json:"languages"`
	CulturalContext CulturalContext `yaml:"cultural_context" json:"cultural_context"`
	MarketSegments  MarketSegments  `yaml:"market_segments" json:"market_segments"`
}

func DefaultRegional() Regional {
	return Regional{
		TargetRegions: []string{
			"mumbai", "delhi", "bangalore", "pune", "hyderabad", "chennai",
			"kolkata", "ahmedabad", "surat", "jaipur", "lucknow", "kanpur",
		},
		Languages: Languages{
			Primary:   "english",
			Secondary: "hindi",
			Regional:  []string{"tamil", "bengali", "telugu", "marathi", "gujarati", "kannada"},
		},
		CulturalContext: CulturalContext{
			Festivals:     []string{"diwali", "holi", "eid", "christmas", "dussehra", "ganesh chaturthi"},
			BusinessHours: "10:00-19:00",
			Currency:      "INR",
			DateFormat:    "DD/MM/YYYY",
		},
		MarketSegments: MarketSegments{
			Metros: []string{"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad"},
			Tier2:  []string{"pune", "ahmedabad", "surat", "jaipur", "lucknow", "kanpur"},
			Tier3:  []string{"agra", "meerut", "rajkot", "kalyan", "vasai", "aurangabad"},
		},
	}
}

// SegmentOf returns the market tier of a lowercased city name.
func (r Regional) SegmentOf(city string) Segment {
	switch {
	case slices.Contains(r.MarketSegments.Metros, city):
		return SegmentMetro
	case slices.Contains(r.MarketSegments.Tier2, city):
		return SegmentTier2
	case slices.Contains(r.MarketSegments.Tier3, city):
		return SegmentTier3
	default:
		return SegmentUnknown
	}
}

// Merge fills empty fields of r from fallback.
func (r Regional) Merge(fallback Regional) Regional {
	if len(r.TargetRegions) == 0 {
		r.TargetRegions = fallback.TargetRegions
	}
	if r.Languages.Primary == "" {
		r.Languages.Primary = fallback.Languages.Primary
	}
	if r.Languages.Secondary == "" {
		r.Languages.Secondary = fallback.Languages.Secondary
	}
	if len(r.Languages.Regional) == 0 {
		r.Languages.Regional = fallback.Languages.Regional
	}
	if len(r.CulturalContext.Festivals) == 0 {
		r.CulturalContext.Festivals = fallback.CulturalContext.Festivals
	}
	if r.CulturalContext.BusinessHours == "" {
		r.CulturalContext.BusinessHours = fallback.CulturalContext.BusinessHours
	}
	if r.CulturalContext.Currency == "" {
		r.CulturalContext.Currency = fallback.CulturalContext.Currency
	}
	if r.CulturalContext.DateFormat == "" {
		r.CulturalContext.DateFormat = fallback.CulturalContext.DateFormat
	}
	if len(r.MarketSegments.Metros) == 0 {
		r.MarketSegments.Metros = fallback.MarketSegments.Metros
	}
	if len(r.MarketSegments.Tier2) == 0 {
		r.MarketSegments.Tier2 = fallback.MarketSegments.Tier2
	}
	if len(r.MarketSegments.Tier3) == 0 {
		r.MarketSegments.Tier3 = fallback.MarketSegments.Tier3
	}
	return r
}
