// Package mobile repacks long paragraphs for small screens and scores
// paragraph length.
package mobile

import (
	"fmt"
	"strings"
	"unicode"

	"contentteam/internal/lexicon"
	"contentteam/internal/textmetrics"
)

type Config struct {
	MaxParagraphWords    int     `yaml:"max_paragraph_words"`
	TargetParagraphWords float64 `yaml:"target_paragraph_words"`
	PenaltyPerWord       float64 `yaml:"penalty_per_word"`
}

func DefaultConfig() Config {
	return Config{
		MaxParagraphWords:    75,
		TargetParagraphWords: 50,
		PenaltyPerWord:       2,
	}
}

type Result struct {
	Content       string   `json:"content"`
	Optimizations []string `json:"optimizations"`
	Suggestions   []string `json:"suggestions"`
}

type Optimizer struct {
	cfg Config
}

func New(cfg Config) *Optimizer {
	def := DefaultConfig()
	if cfg.MaxParagraphWords <= 0 {
		cfg.MaxParagraphWords = def.MaxParagraphWords
	}
	if cfg.TargetParagraphWords <= 0 {
		cfg.TargetParagraphWords = def.TargetParagraphWords
	}
	if cfg.PenaltyPerWord <= 0 {
		cfg.PenaltyPerWord = def.PenaltyPerWord
	}
	return &Optimizer{cfg: cfg}
}

// Optimize repacks long paragraphs and collects bullet-list suggestions. The
// suggestions are returned separately so the content stays stable under
// repeated passes.
func (o *Optimizer) Optimize(text string) Result {
	res := Result{Optimizations: []string{}, Suggestions: []string{}}

	paragraphs := textmetrics.RawParagraphs(text)
	out := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		if textmetrics.WordCount(para) <= o.cfg.MaxParagraphWords {
			out = append(out, para)
			continue
		}
		out = append(out, o.pack(SplitSentences(para))...)
		res.Optimizations = append(res.Optimizations, "Split long paragraph for mobile viewing")
	}
	res.Content = textmetrics.JoinParagraphs(out)

	lower := strings.ToLower(res.Content)
	for _, indicator := range lexicon.ListIndicators {
		if lexicon.ContainsTerm(lower, indicator) {
			res.Suggestions = append(res.Suggestions, fmt.Sprintf(
				"Consider converting the list after '%s' into bullet points for better mobile readability.", indicator))
			res.Optimizations = append(res.Optimizations, "Suggested bullet point formatting for mobile")
			break
		}
	}
	return res
}

// Repack returns only the repacked content.
func (o *Optimizer) Repack(text string) string {
	return o.Optimize(text).Content
}

// Score rates average paragraph length in [0, 100]; text without paragraphs scores 0.
func (o *Optimizer) Score(text string) float64 {
	paragraphs := textmetrics.Paragraphs(text)
	if len(paragraphs) == 0 {
		return 0
	}
	total := 0
	for _, p := range paragraphs {
		total += textmetrics.WordCount(p)
	}
	avg := float64(total) / float64(len(paragraphs))
	score := 100 - (avg-o.cfg.TargetParagraphWords)*o.cfg.PenaltyPerWord
	return max(0, min(100, score))
}

// Friendly reports whether every paragraph stays within limit words.
func Friendly(text string, limit int) bool {
	for _, p := range textmetrics.Paragraphs(text) {
		if textmetrics.WordCount(p) > limit {
			return false
		}
	}
	return true
}

// pack greedily fills paragraphs up to the word limit. A single sentence
// longer than the limit becomes its own paragraph.
func (o *Optimizer) pack(sentences []string) []string {
	var chunks []string
	var current []string
	count := 0
	for _, s := range sentences {
		n := textmetrics.WordCount(s)
		if count+n > o.cfg.MaxParagraphWords && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			count = 0
		}
		current = append(current, s)
		count += n
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// SplitSentences breaks text after '.', '!' or '?' when followed by
// whitespace or the end of text. Sentences keep their punctuation and are trimmed.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
