// Package seo expands target keywords for Indian search behaviour and reports
// how well a piece of content uses them.
package seo

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"contentteam/internal/lexicon"
	"contentteam/internal/textmetrics"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Config struct {
	MaxPrimaryKeywords  int     `yaml:"max_primary_keywords"`
	MaxRegions          int     `yaml:"max_regions"`
	MaxTitleChars       int     `yaml:"max_title_chars"`
	MaxDescriptionChars int     `yaml:"max_description_chars"`
	MinDensity          float64 `yaml:"min_density"`
	MaxDensity          float64 `yaml:"max_density"`
}

func DefaultConfig() Config {
	return Config{
		MaxPrimaryKeywords:  3,
		MaxRegions:          2,
		MaxTitleChars:       60,
		MaxDescriptionChars: 160,
		MinDensity:          0.5,
		MaxDensity:          2.5,
	}
}

var (
	marketModifiers  = []string{"best", "top", "genuine"}
	serviceModifiers = []string{"online", "home delivery"}
)

// Meta holds the generated page metadata.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// KeywordUsage describes how one target keyword appears in the content.
type KeywordUsage struct {
	Keyword          string  `json:"keyword"`
	Occurrences      int     `json:"occurrences"`
	Density          float64 `json:"density_percent"`
	InFirstParagraph bool    `json:"in_first_paragraph"`
}

type Report struct {
	PrimaryKeywords   []string       `json:"primary_keywords"`
	SecondaryKeywords []string       `json:"secondary_keywords"`
	LocalKeywords     []string       `json:"local_keywords"`
	VoiceKeywords     []string       `json:"voice_search_keywords"`
	SeasonalKeywords  []string       `json:"seasonal_keywords"`
	Usage             []KeywordUsage `json:"keyword_usage"`
	Headers           []string       `json:"headers"`
	SuggestedHeaders  []string       `json:"suggested_headers"`
	Meta              Meta           `json:"meta"`
	// FAQ is the suggested question set; HasFAQ is true when the content
	// already carries one.
	FAQ             []FAQ        `json:"faq"`
	HasFAQ          bool         `json:"has_faq"`
	Schema          SchemaMarkup `json:"schema_markup"`
	Score           float64      `json:"seo_score"`
	LocalPotential  string       `json:"local_search_potential"`
	VoicePotential  string       `json:"voice_search_potential"`
	Recommendations []string     `json:"recommendations"`
}

type Analyzer struct {
	cfg Config
}

func New(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.MaxPrimaryKeywords <= 0 {
		cfg.MaxPrimaryKeywords = def.MaxPrimaryKeywords
	}
	if cfg.MaxRegions <= 0 {
		cfg.MaxRegions = def.MaxRegions
	}
	if cfg.MaxTitleChars <= 0 {
		cfg.MaxTitleChars = def.MaxTitleChars
	}
	if cfg.MaxDescriptionChars <= 0 {
		cfg.MaxDescriptionChars = def.MaxDescriptionChars
	}
	if cfg.MinDensity <= 0 {
		cfg.MinDensity = def.MinDensity
	}
	if cfg.MaxDensity <= 0 {
		cfg.MaxDensity = def.MaxDensity
	}
	return &Analyzer{cfg: cfg}
}

// Analyze expands keywords against the regions and measures their use in
// content. industry selects the secondary keyword set.
func (a *Analyzer) Analyze(content string, keywords, regions []string, industry string) Report {
	return a.AnalyzeFor(content, Business{Industry: industry}, keywords, regions)
}

// AnalyzeFor is Analyze with the business details used for schema markup.
// b.Industry selects the secondary keyword set.
func (a *Analyzer) AnalyzeFor(content string, b Business, keywords, regions []string) Report {
	keywords = clean(keywords)
	regions = clean(regions)

	r := Report{
		SecondaryKeywords: head(lexicon.SecondaryKeywords(b.Industry), 5),
		SeasonalKeywords:  lexicon.SeasonalKeywords,
	}
	primary := head(keywords, a.cfg.MaxPrimaryKeywords)
	r.PrimaryKeywords = a.Variations(primary, regions)
	r.LocalKeywords = LocalKeywords(primary, regions)
	r.VoiceKeywords = VoiceKeywords(head(r.PrimaryKeywords, 3))
	r.Usage = Usage(content, keywords)
	r.Headers = textmetrics.Headers(content)
	r.SuggestedHeaders = ContentHeaders(primary, r.SecondaryKeywords)
	r.Meta = a.meta(content, r.PrimaryKeywords, r.LocalKeywords, regions)
	r.FAQ = FAQs(primary)
	r.HasFAQ = HasFAQ(content)
	r.Schema = Schema(b, regions, r.FAQ)

	r.Score = math.Min(100, float64(15*len(r.PrimaryKeywords)+10*len(r.LocalKeywords)+5*len(r.VoiceKeywords)))
	r.LocalPotential = potential(len(r.LocalKeywords) > 10)
	r.VoicePotential = potential(len(r.VoiceKeywords) > 15)
	r.Recommendations = a.recommendations(r)
	return r
}

// Variations returns each keyword with its regional and market variants.
func (a *Analyzer) Variations(keywords, regions []string) []string {
	out := []string{}
	for _, kw := range keywords {
		out = append(out, kw)
		for _, region := range head(regions, a.cfg.MaxRegions) {
			out = append(out, kw+" "+region, kw+" in "+region, region+" "+kw)
		}
		for _, m := range marketModifiers {
			out = append(out, m+" "+kw)
		}
		for _, m := range serviceModifiers {
			out = append(out, kw+" "+m)
		}
	}
	return out
}

// LocalKeywords pairs every keyword with every region.
func LocalKeywords(keywords, regions []string) []string {
	out := []string{}
	for _, kw := range keywords {
		for _, region := range regions {
			out = append(out,
				kw+" in "+region,
				kw+" "+region,
				"best "+kw+" "+region,
				kw+" near "+region,
			)
		}
	}
	return out
}

// VoiceKeywords phrases keywords the way people ask a voice assistant.
func VoiceKeywords(keywords []string) []string {
	out := []string{}
	for _, kw := range keywords {
		out = append(out,
			"best "+kw+" near me",
			"how to find "+kw,
			"where can i get "+kw,
			"what is the cost of "+kw,
		)
	}
	return out
}

// Usage measures occurrence, density and first-paragraph presence of each keyword.
func Usage(content string, keywords []string) []KeywordUsage {
	lower := strings.ToLower(content)
	total := textmetrics.WordCount(content)
	first := ""
	if ps := textmetrics.Paragraphs(lower); len(ps) > 0 {
		first = ps[0]
	}

	out := make([]KeywordUsage, 0, len(keywords))
	for _, kw := range keywords {
		u := KeywordUsage{
			Keyword:          kw,
			Occurrences:      lexicon.CountTerm(lower, kw),
			InFirstParagraph: lexicon.ContainsTerm(first, kw),
		}
		if total > 0 {
			d := float64(u.Occurrences*textmetrics.WordCount(kw)) / float64(total) * 100
			u.Density = math.Round(d*100) / 100
		}
		out = append(out, u)
	}
	return out
}

func (a *Analyzer) meta(content string, primary, local, regions []string) Meta {
	caser := cases.Title(language.English)
	kw := ""
	if len(primary) > 0 {
		kw = primary[0]
	}
	region := "India"
	if len(regions) > 0 {
		region = caser.String(regions[0])
	}

	title := fmt.Sprintf("%s in %s | Trusted Service Provider", caser.String(kw), region)
	if utf8.RuneCountInString(title) > a.cfg.MaxTitleChars {
		title = fmt.Sprintf("%s %s | Quality Service", caser.String(kw), region)
	}

	lead := truncate(strings.TrimSpace(strings.SplitN(content, ".", 2)[0]), 100)
	desc := fmt.Sprintf("%s. Expert %s in %s. Contact us for quality service and competitive prices.", lead, kw, region)
	if utf8.RuneCountInString(desc) > a.cfg.MaxDescriptionChars {
		desc = fmt.Sprintf("Professional %s in %s. Quality service, competitive prices. Contact us today for expert assistance.", kw, region)
	}

	return Meta{
		Title:       truncate(strings.TrimSpace(title), a.cfg.MaxTitleChars),
		Description: truncate(desc, a.cfg.MaxDescriptionChars),
		Keywords:    strings.Join(slices.Concat(head(primary, 5), head(local, 3)), ", "),
	}
}

func (a *Analyzer) recommendations(r Report) []string {
	recs := []string{}
	if len(r.PrimaryKeywords) < 3 {
		recs = append(recs, "Add more primary keywords focused on Indian market search terms")
	}
	if len(r.LocalKeywords) < 5 {
		recs = append(recs, "Expand local keyword targeting for better regional visibility")
	}
	for _, u := range r.Usage {
		switch {
		case u.Occurrences == 0:
			recs = append(recs, fmt.Sprintf("Work '%s' into the content naturally", u.Keyword))
		case u.Density > a.cfg.MaxDensity:
			recs = append(recs, fmt.Sprintf("Reduce repetition of '%s' (%.2f%% density)", u.Keyword, u.Density))
		case u.Density < a.cfg.MinDensity:
			recs = append(recs, fmt.Sprintf("Use '%s' a little more often (%.2f%% density)", u.Keyword, u.Density))
		}
		if u.Occurrences > 0 && !u.InFirstParagraph {
			recs = append(recs, fmt.Sprintf("Mention '%s' in the opening paragraph", u.Keyword))
		}
	}
	if len(r.Headers) == 0 {
		recs = append(recs, "Add relevant headers (H2, H3) with Indian keywords for better search visibility")
	}
	if !r.HasFAQ {
		recs = append(recs, "Add FAQ section optimized for voice search queries")
	}
	return append(recs,
		"Create location-specific landing pages for each target city",
		"Claim and optimize Google My Business listing",
		"Build citations in major Indian business directories",
	)
}

func potential(high bool) string {
	if high {
		return "High"
	}
	return "Medium"
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
