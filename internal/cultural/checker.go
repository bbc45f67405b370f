// Package cultural flags insensitive wording, exclusive language and single-city
// bias in marketing copy. It is keyword matching, so misses are expected; the
// output is advisory and never rejects content.
package cultural

import (
	"fmt"
	"strings"

	"contentteam/internal/lexicon"
	"contentteam/internal/textmetrics"
)

type Config struct {
	SensitivePenalty     float64 `yaml:"sensitive_penalty"`
	BalanceWordThreshold int     `yaml:"balance_word_threshold"`
	MinDistinctCities    int     `yaml:"min_distinct_cities"`
}

func DefaultConfig() Config {
	return Config{
		SensitivePenalty:     10,
		BalanceWordThreshold: 200,
		MinDistinctCities:    2,
	}
}

type Assessment struct {
	SensitivityScore  float64  `json:"sensitivity_score"`
	IssuesFound       []string `json:"issues_found"`
	Suggestions       []string `json:"suggestions"`
	RegionalBalance   bool     `json:"regional_balance"`
	InclusiveLanguage bool     `json:"inclusive_language"`
	RegionsMentioned  []string `json:"regions_mentioned"`
}

type Checker struct {
	cfg        Config
	sensitive  []string
	cities     []string
	exclusive  []lexicon.Replacement
	indicators []string
}

func New(cfg Config) *Checker {
	def := DefaultConfig()
	if cfg.SensitivePenalty <= 0 {
		cfg.SensitivePenalty = def.SensitivePenalty
	}
	if cfg.BalanceWordThreshold <= 0 {
		cfg.BalanceWordThreshold = def.BalanceWordThreshold
	}
	if cfg.MinDistinctCities <= 0 {
		cfg.MinDistinctCities = def.MinDistinctCities
	}
	return &Checker{
		cfg:        cfg,
		sensitive:  lexicon.SensitiveTerms,
		cities:     lexicon.IndianCities,
		exclusive:  lexicon.ExclusiveTerms,
		indicators: lexicon.IndianContextIndicators,
	}
}

// Assess checks text against the built-in city list.
func (c *Checker) Assess(text string) Assessment {
	return c.AssessWithRegions(text, nil)
}

// AssessWithRegions checks text, measuring regional balance against regions
// when given and the built-in city list otherwise.
func (c *Checker) AssessWithRegions(text string, regions []string) Assessment {
	a := Assessment{
		SensitivityScore:  100,
		IssuesFound:       []string{},
		Suggestions:       []string{},
		InclusiveLanguage: true,
		RegionsMentioned:  []string{},
	}
	lower := strings.ToLower(text)

	for _, term := range c.sensitive {
		if !lexicon.ContainsTerm(lower, term) {
			continue
		}
		a.SensitivityScore -= c.cfg.SensitivePenalty
		a.IssuesFound = append(a.IssuesFound, fmt.Sprintf("Potentially insensitive term: '%s'", term))
		a.Suggestions = append(a.Suggestions, fmt.Sprintf("Replace '%s' with more respectful language", term))
	}
	if a.SensitivityScore < 0 {
		a.SensitivityScore = 0
	}

	cities := c.cities
	if len(regions) > 0 {
		cities = normalize(regions)
	}
	a.RegionsMentioned = append(a.RegionsMentioned, lexicon.MatchedTerms(lower, cities)...)
	switch {
	case len(a.RegionsMentioned) >= c.cfg.MinDistinctCities:
		a.RegionalBalance = true
	case len(a.RegionsMentioned) == 1 && textmetrics.WordCount(text) > c.cfg.BalanceWordThreshold:
		a.Suggestions = append(a.Suggestions, "Consider adding examples from other Indian regions for better balance")
	}

	for _, r := range c.exclusive {
		if lexicon.ContainsTerm(lower, r.Term) {
			a.InclusiveLanguage = false
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("Replace '%s' with '%s'", r.Term, r.Alternative))
		}
	}

	return a
}

// HasIndianContext reports whether text carries any India-specific marker.
func (c *Checker) HasIndianContext(text string) bool {
	return lexicon.ContainsAny(strings.ToLower(text), c.indicators)
}

// Appropriate is the hard pass/fail check used before approval.
func (c *Checker) Appropriate(text string) bool {
	return !lexicon.ContainsAny(strings.ToLower(text), lexicon.HardSensitiveTerms)
}

func normalize(regions []string) []string {
	seen := make(map[string]bool, len(regions))
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
