// Package quality combines the readability, cultural, mobile and engagement
// heuristics into one weighted score.
package quality

import (
	"math"
	"strings"

	"contentteam/internal/cultural"
	"contentteam/internal/lexicon"
	"contentteam/internal/mobile"
	"contentteam/internal/readability"
	"contentteam/internal/textmetrics"
)

// Weights are normalised to sum to 1 so the overall score stays a convex
// combination of the sub-scores.
type Weights struct {
	Readability float64 `yaml:"readability"`
	Cultural    float64 `yaml:"cultural"`
	Mobile      float64 `yaml:"mobile"`
	Engagement  float64 `yaml:"engagement"`
}

func (w Weights) sum() float64 {
	return w.Readability + w.Cultural + w.Mobile + w.Engagement
}

// Thresholds below which a sub-score produces a recommendation.
type Thresholds struct {
	Readability float64 `yaml:"readability"`
	Cultural    float64 `yaml:"cultural"`
	Mobile      float64 `yaml:"mobile"`
	Engagement  float64 `yaml:"engagement"`
}

type Config struct {
	Weights Weights `yaml:"weights"`
	// CulturalPresent and CulturalAbsent are the two values the cultural
	// relevance sub-score can take.
	CulturalPresent  float64    `yaml:"cultural_present"`
	CulturalAbsent   float64    `yaml:"cultural_absent"`
	EngagementPerHit float64    `yaml:"engagement_per_hit"`
	Thresholds       Thresholds `yaml:"thresholds"`
	LongContentWords int        `yaml:"long_content_words"`
}

func DefaultConfig() Config {
	return Config{
		Weights:          Weights{Readability: 0.3, Cultural: 0.3, Mobile: 0.2, Engagement: 0.2},
		CulturalPresent:  85,
		CulturalAbsent:   40,
		EngagementPerHit: 5,
		Thresholds:       Thresholds{Readability: 80, Cultural: 70, Mobile: 80, Engagement: 60},
		LongContentWords: 500,
	}
}

type Score struct {
	Readability float64 `json:"readability_score"`
	Cultural    float64 `json:"cultural_relevance"`
	Mobile      float64 `json:"mobile_optimization"`
	Engagement  float64 `json:"engagement_potential"`
	Overall     float64 `json:"overall_quality"`
}

// ToMap returns the score as a flat key/value map using the JSON keys.
func (s Score) ToMap() map[string]float64 {
	return map[string]float64{
		"readability_score":    s.Readability,
		"cultural_relevance":   s.Cultural,
		"mobile_optimization":  s.Mobile,
		"engagement_potential": s.Engagement,
		"overall_quality":      s.Overall,
	}
}

// Report is the full quality picture for one piece of content.
type Report struct {
	Scores          Score               `json:"quality_scores"`
	Metrics         textmetrics.Metrics `json:"metrics"`
	Cultural        cultural.Assessment `json:"cultural_assessment"`
	Recommendations []string            `json:"recommendations"`
}

type Assessor struct {
	cfg         Config
	readability *readability.Scorer
	mobile      *mobile.Optimizer
	cultural    *cultural.Checker
}

// New builds an Assessor. Nil components get their default configuration.
func New(cfg Config, r *readability.Scorer, m *mobile.Optimizer, c *cultural.Checker) *Assessor {
	def := DefaultConfig()
	if cfg.Weights.sum() <= 0 || cfg.Weights.Readability < 0 || cfg.Weights.Cultural < 0 ||
		cfg.Weights.Mobile < 0 || cfg.Weights.Engagement < 0 {
		cfg.Weights = def.Weights
	}
	if cfg.CulturalPresent == 0 && cfg.CulturalAbsent == 0 {
		cfg.CulturalPresent, cfg.CulturalAbsent = def.CulturalPresent, def.CulturalAbsent
	}
	if cfg.EngagementPerHit <= 0 {
		cfg.EngagementPerHit = def.EngagementPerHit
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = def.Thresholds
	}
	if cfg.LongContentWords <= 0 {
		cfg.LongContentWords = def.LongContentWords
	}
	if r == nil {
		r = readability.New(readability.DefaultConfig())
	}
	if m == nil {
		m = mobile.New(mobile.DefaultConfig())
	}
	if c == nil {
		c = cultural.New(cultural.DefaultConfig())
	}
	return &Assessor{cfg: cfg, readability: r, mobile: m, cultural: c}
}

// Score computes every sub-score and the weighted overall. Empty text scores
// 0 for readability, mobile and engagement.
func (a *Assessor) Score(text string) Score {
	s := Score{
		Readability: a.readability.Score(text),
		Cultural:    a.culturalRelevance(text),
		Mobile:      a.mobile.Score(text),
		Engagement:  a.Engagement(text),
	}
	w := a.cfg.Weights
	overall := (s.Readability*w.Readability +
		s.Cultural*w.Cultural +
		s.Mobile*w.Mobile +
		s.Engagement*w.Engagement) / w.sum()
	s.Overall = clamp(math.Round(overall*100) / 100)
	return s
}

// Engagement counts question marks, exclamation marks and direct-address
// pronouns, capped at 100.
func (a *Assessor) Engagement(text string) float64 {
	lower := strings.ToLower(text)
	count := 0
	for _, p := range lexicon.EngagementPunctuation {
		count += lexicon.CountTerm(lower, p)
	}
	for _, p := range lexicon.EngagementPronouns {
		count += lexicon.CountTerm(lower, p)
	}
	return clamp(float64(count) * a.cfg.EngagementPerHit)
}

func (a *Assessor) culturalRelevance(text string) float64 {
	if a.cultural.HasIndianContext(text) {
		return clamp(a.cfg.CulturalPresent)
	}
	return clamp(a.cfg.CulturalAbsent)
}

// Recommendations turns low sub-scores and content cues into advice.
func (a *Assessor) Recommendations(text string, s Score) []string {
	recs := []string{}
	th := a.cfg.Thresholds
	if s.Readability < th.Readability {
		recs = append(recs, "Consider shortening sentences and using simpler vocabulary for better readability")
	}
	if s.Cultural < th.Cultural {
		recs = append(recs, "Add more Indian examples, statistics, or cultural references to increase local relevance")
	}
	if s.Mobile < th.Mobile {
		recs = append(recs, "Break long paragraphs into shorter chunks for better mobile reading experience")
	}
	if s.Engagement < th.Engagement {
		recs = append(recs, "Include more questions, direct address to readers, or interactive elements")
	}

	lower := strings.ToLower(text)
	if textmetrics.WordCount(text) > a.cfg.LongContentWords && !textmetrics.HasBullets(text) {
		recs = append(recs, "Consider adding bullet points or numbered lists for easier scanning")
	}
	if lexicon.ContainsAny(lower, []string{"call", "contact"}) {
		recs = append(recs, "Ensure contact methods include WhatsApp and local phone numbers for Indian market")
	}
	if lexicon.ContainsAny(lower, []string{"price", "prices", "cost", "costs"}) {
		recs = append(recs, "Include Indian currency formatting and consider mentioning payment options like UPI")
	}
	return recs
}

// Assess scores text and gathers metrics, the cultural review and recommendations.
func (a *Assessor) Assess(text string) Report {
	s := a.Score(text)
	return Report{
		Scores:          s,
		Metrics:         textmetrics.Analyze(text),
		Cultural:        a.cultural.Assess(text),
		Recommendations: a.Recommendations(text, s),
	}
}

func clamp(v float64) float64 {
	return max(0, min(100, v))
}
