// Package editor runs the deterministic editing pass over a draft: language
// fixes, cultural review, readability and mobile restructuring, market
// context, then scoring. Advice is returned as notes and never written into
// the edited content.
package editor

import (
	"fmt"
	"regexp"
	"strings"

	"contentteam/internal/cultural"
	"contentteam/internal/lexicon"
	"contentteam/internal/mobile"
	"contentteam/internal/quality"
	"contentteam/internal/readability"
	"contentteam/internal/textmetrics"
)

type ContentType string

const (
	General     ContentType = "general"
	Blog        ContentType = "blog"
	SocialMedia ContentType = "social_media"
	Email       ContentType = "email"
	// CompetitorAnalysis asks the team for a strategic review of a
	// competitor's content rather than marketing copy.
	CompetitorAnalysis ContentType = "competitor_analysis"
)

// ParseContentType accepts blog, social_media, email, competitor_analysis or
// general; empty means general.
func ParseContentType(s string) (ContentType, error) {
	switch ct := ContentType(strings.ToLower(strings.TrimSpace(s))); ct {
	case "":
		return General, nil
	case General, Blog, SocialMedia, Email, CompetitorAnalysis:
		return ct, nil
	default:
		return "", fmt.Errorf("unsupported content type %q (want blog, social_media, email, competitor_analysis or general)", s)
	}
}

// FinalChecks are the pass/fail gates applied to the edited content.
type FinalChecks struct {
	ProperPunctuation        bool `json:"proper_punctuation"`
	IndianCurrencyFormat     bool `json:"indian_currency_format"`
	MobileFriendlyParagraphs bool `json:"mobile_friendly_paragraphs"`
	IncludesCallToAction     bool `json:"includes_call_to_action"`
	CulturallyAppropriate    bool `json:"culturally_appropriate"`
}

type Result struct {
	Original         string              `json:"original_content"`
	Edited           string              `json:"edited_content"`
	ContentType      ContentType         `json:"content_type"`
	InitialAnalysis  textmetrics.Metrics `json:"initial_analysis"`
	ImprovementsMade []string            `json:"improvements_made"`
	Cultural         cultural.Assessment `json:"cultural_assessment"`
	Readability      readability.Metrics `json:"readability_metrics"`
	Notes            []string            `json:"editor_notes"`
	Scores           quality.Score       `json:"quality_scores"`
	Recommendations  []string            `json:"recommendations"`
	FinalChecks      FinalChecks         `json:"final_checks"`
}

// Deps are the analysers the editor delegates to. Nil fields get defaults.
type Deps struct {
	Readability *readability.Scorer
	Cultural    *cultural.Checker
	Mobile      *mobile.Optimizer
	Quality     *quality.Assessor
}

type Editor struct {
	readability *readability.Scorer
	cultural    *cultural.Checker
	mobile      *mobile.Optimizer
	quality     *quality.Assessor
}

func New(d Deps) *Editor {
	if d.Readability == nil {
		d.Readability = readability.New(readability.DefaultConfig())
	}
	if d.Cultural == nil {
		d.Cultural = cultural.New(cultural.DefaultConfig())
	}
	if d.Mobile == nil {
		d.Mobile = mobile.New(mobile.DefaultConfig())
	}
	if d.Quality == nil {
		d.Quality = quality.New(quality.DefaultConfig(), d.Readability, d.Mobile, d.Cultural)
	}
	return &Editor{
		readability: d.Readability,
		cultural:    d.Cultural,
		mobile:      d.Mobile,
		quality:     d.Quality,
	}
}

// Edit runs the full pass over content.
func (e *Editor) Edit(content string, ct ContentType) Result {
	res := Result{
		Original:         content,
		ContentType:      ct,
		InitialAnalysis:  textmetrics.Analyze(content),
		ImprovementsMade: []string{},
		Notes:            []string{},
	}

	text, changes := FixLanguage(content)
	res.ImprovementsMade = append(res.ImprovementsMade, changes...)

	res.Cultural = e.cultural.Assess(text)

	opt := e.readability.Optimize(text)
	text = opt.Content
	res.Readability = opt.Metrics
	res.ImprovementsMade = append(res.ImprovementsMade, opt.Metrics.ImprovementsMade...)

	text, changes = AddMarketContext(text)
	res.ImprovementsMade = append(res.ImprovementsMade, changes...)
	if !e.cultural.HasIndianContext(text) {
		res.Notes = append(res.Notes, "Consider adding specific Indian examples, such as successful local businesses, relevant statistics, or cultural references to make this content more relatable to Indian audiences.")
	}

	m := e.mobile.Optimize(text)
	text = m.Content
	res.ImprovementsMade = append(res.ImprovementsMade, m.Optimizations...)
	res.Notes = append(res.Notes, m.Suggestions...)

	res.Notes = append(res.Notes, PolishNotes(text, ct)...)

	res.Edited = text
	res.Scores = e.quality.Score(text)
	res.Recommendations = e.quality.Recommendations(text, res.Scores)
	res.FinalChecks = e.Check(text)
	return res
}

// FixLanguage corrects common Indian-English slips, regroups rupee amounts
// into lakh notation and capitalises Indian place and festival names.
func FixLanguage(text string) (string, []string) {
	var changes []string
	for _, fix := range lexicon.GrammarFixes {
		match := fix.Pattern.FindString(text)
		if match == "" {
			continue
		}
		text = fix.Pattern.ReplaceAllString(text, fix.Replacement)
		changes = append(changes, fmt.Sprintf("Fixed common error: '%s' → '%s'", strings.ToLower(match), fix.Replacement))
	}

	if formatted := FormatRupees(text); formatted != text {
		text = formatted
		changes = append(changes, "Converted to Indian number formatting")
	}

	for _, term := range lexicon.CapitalizedTerms {
		changed := false
		for _, match := range term.Pattern.FindAllString(text, -1) {
			if match != term.Replacement {
				changed = true
				break
			}
		}
		if changed {
			text = term.Pattern.ReplaceAllString(text, term.Replacement)
			changes = append(changes, "Capitalized Indian term: "+term.Replacement)
		}
	}
	return text, changes
}

var rupeeAmount = regexp.MustCompile(`₹\s*(\d{1,3}(?:,\d{3})+|\d{4,})\b`)

// FormatRupees rewrites rupee amounts in lakh/crore digit grouping, so
// ₹1234567 and ₹1,234,567 both become ₹12,34,567.
func FormatRupees(text string) string {
	return rupeeAmount.ReplaceAllStringFunc(text, func(m string) string {
		digits := rupeeAmount.FindStringSubmatch(m)[1]
		return "₹" + groupIndian(strings.ReplaceAll(digits, ",", ""))
	})
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

var (
	dollarAmount = regexp.MustCompile(`\$\d+(?:[.,]\d+)*`)
	timePressure = regexp.MustCompile(`(?i)\b(?:` + quoteAll(lexicon.TimePressurePhrases) + `)\b`)
)

const (
	rupeeNote = " (₹ equivalent)"
	istNote   = " (IST)"
)

// AddMarketContext flags dollar amounts for rupee conversion and pins
// time-pressure phrases to IST. Already annotated spans are left alone.
func AddMarketContext(text string) (string, []string) {
	var changes []string
	if out, n := annotate(text, dollarAmount, rupeeNote); n > 0 {
		text = out
		changes = append(changes, "Added Indian currency context to international examples")
	}
	if out, n := annotate(text, timePressure, istNote); n > 0 {
		text = out
		changes = append(changes, "Added Indian time zone context")
	}
	return text, changes
}

func annotate(text string, re *regexp.Regexp, note string) (string, int) {
	var b strings.Builder
	last, added := 0, 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(text[last:loc[1]])
		last = loc[1]
		if strings.HasPrefix(text[loc[1]:], note) {
			continue
		}
		b.WriteString(note)
		added++
	}
	b.WriteString(text[last:])
	return b.String(), added
}

var socialOpeners = []string{"🎯", "🚀", "💡", "🔥", "✨", "🎉"}

// PolishNotes returns platform-specific hints for the content type.
func PolishNotes(text string, ct ContentType) []string {
	var notes []string
	switch ct {
	case SocialMedia:
		opened := false
		for _, e := range socialOpeners {
			if strings.HasPrefix(strings.TrimSpace(text), e) {
				opened = true
				break
			}
		}
		if !opened {
			notes = append(notes, "Consider starting with an engaging emoji or hook for social media impact.")
		}
	case Email:
		if !strings.Contains(strings.ToLower(text), "subject") {
			notes = append(notes, "Suggested subject line: include numbers, urgency, or a local reference for better open rates in the Indian market.")
		}
	case Blog:
		if !textmetrics.HasHeaders(text) {
			notes = append(notes, "Add relevant headers (H2, H3) with Indian keywords for better search visibility.")
		}
	case CompetitorAnalysis:
		if !textmetrics.HasHeaders(text) {
			notes = append(notes, "Organise the analysis under one header per deliverable so findings are easy to scan.")
		}
		if !strings.Contains(strings.ToLower(text), "recommend") {
			notes = append(notes, "Close with strategic recommendations the team can act on.")
		}
	}
	return notes
}

var (
	punctuation  = regexp.MustCompile(`[.!?]`)
	rupeeWithNum = regexp.MustCompile(`₹\s*\d`)
)

// mobileMaxWords is the looser paragraph limit used for the final gate.
const mobileMaxWords = 100

// Check runs the final approval gates.
func (e *Editor) Check(text string) FinalChecks {
	lower := strings.ToLower(text)
	return FinalChecks{
		ProperPunctuation:        punctuation.MatchString(strings.TrimSpace(text)),
		IndianCurrencyFormat:     rupeeWithNum.MatchString(text),
		MobileFriendlyParagraphs: mobile.Friendly(text, mobileMaxWords),
		IncludesCallToAction:     lexicon.ContainsAny(lower, lexicon.CTAVerbs),
		CulturallyAppropriate:    e.cultural.Appropriate(text),
	}
}

func quoteAll(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}
