// Package readability scores text by sentence length and breaks up long
// sentences at conjunctions. The score is a linear penalty around a target
// sentence length, not a standard readability formula.
package readability

import (
	"strings"

	"contentteam/internal/lexicon"
	"contentteam/internal/textmetrics"
)

type Config struct {
	// AutoSplit enables breaking long sentences at conjunctions. The split is
	// positional and can leave grammatically incomplete fragments.
	AutoSplit             bool     `yaml:"auto_split"`
	TargetSentenceWords   float64  `yaml:"target_sentence_words"`
	PenaltyPerWord        float64  `yaml:"penalty_per_word"`
	MaxSentenceWords      int      `yaml:"max_sentence_words"`
	MinClauseWords        int      `yaml:"min_clause_words"`
	MaxClauseWords        int      `yaml:"max_clause_words"`
	MaxParagraphSentences int      `yaml:"max_paragraph_sentences"`
	Conjunctions          []string `yaml:"conjunctions"`
}

func DefaultConfig() Config {
	return Config{
		AutoSplit:             true,
		TargetSentenceWords:   15,
		PenaltyPerWord:        3,
		MaxSentenceWords:      25,
		MinClauseWords:        10,
		MaxClauseWords:        20,
		MaxParagraphSentences: 5,
		Conjunctions:          lexicon.SplitConjunctions,
	}
}

type Metrics struct {
	AvgSentenceLength   float64  `json:"avg_sentence_length"`
	TotalWords          int      `json:"total_words"`
	TotalSentences      int      `json:"total_sentences"`
	EstimatedGradeLevel float64  `json:"estimated_grade_level"`
	ImprovementsMade    []string `json:"improvements_made"`
}

type Result struct {
	Content string  `json:"content"`
	Metrics Metrics `json:"metrics"`
}

type Scorer struct {
	cfg Config
}

func New(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.TargetSentenceWords <= 0 {
		cfg.TargetSentenceWords = def.TargetSentenceWords
	}
	if cfg.PenaltyPerWord <= 0 {
		cfg.PenaltyPerWord = def.PenaltyPerWord
	}
	if cfg.MaxSentenceWords <= 0 {
		cfg.MaxSentenceWords = def.MaxSentenceWords
	}
	if cfg.MinClauseWords <= 0 {
		cfg.MinClauseWords = def.MinClauseWords
	}
	if cfg.MaxClauseWords <= 0 {
		cfg.MaxClauseWords = def.MaxClauseWords
	}
	if cfg.MaxParagraphSentences <= 0 {
		cfg.MaxParagraphSentences = def.MaxParagraphSentences
	}
	if len(cfg.Conjunctions) == 0 {
		cfg.Conjunctions = def.Conjunctions
	}
	return &Scorer{cfg: cfg}
}

// Score returns the readability of text in [0, 100]; text without sentences scores 0.
func (s *Scorer) Score(text string) float64 {
	sentences := textmetrics.Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	avg := float64(textmetrics.WordCount(text)) / float64(len(sentences))
	return s.ScoreForAverage(avg)
}

// ScoreForAverage maps an average sentence length to a score.
func (s *Scorer) ScoreForAverage(avgWordsPerSentence float64) float64 {
	return clamp(100-(avgWordsPerSentence-s.cfg.TargetSentenceWords)*s.cfg.PenaltyPerWord, 0, 100)
}

// SplitSentence breaks a sentence longer than the configured maximum at the
// first conjunction (in table order) whose left-hand clause has strictly
// between MinClauseWords and MaxClauseWords words. ok is false when the
// sentence is short enough or no position qualifies.
func (s *Scorer) SplitSentence(sentence string) (left, right string, ok bool) {
	sentence = strings.TrimSpace(sentence)
	if textmetrics.WordCount(sentence) <= s.cfg.MaxSentenceWords {
		return sentence, "", false
	}
	lower := asciiLower(sentence)
	for _, conj := range s.cfg.Conjunctions {
		idx := lexicon.FirstTerm(lower, conj)
		if idx < 0 {
			continue
		}
		n := textmetrics.WordCount(sentence[:idx])
		if n > s.cfg.MinClauseWords && n < s.cfg.MaxClauseWords {
			return strings.TrimSpace(sentence[:idx]), strings.TrimSpace(sentence[idx:]), true
		}
	}
	return sentence, "", false
}

// Optimize splits long sentences (when AutoSplit is on) and halves paragraphs
// with too many sentences. Paragraphs that need neither are left untouched.
func (s *Scorer) Optimize(text string) Result {
	var improvements []string
	var out []string

	for _, para := range textmetrics.RawParagraphs(text) {
		sentences := textmetrics.Sentences(para)
		changed := false

		if s.cfg.AutoSplit {
			split := make([]string, 0, len(sentences))
			for _, sentence := range sentences {
				if left, right, ok := s.SplitSentence(sentence); ok {
					split = append(split, left, right)
					improvements = append(improvements, "Split long sentence for better readability")
					changed = true
					continue
				}
				split = append(split, sentence)
			}
			sentences = split
		}

		if len(sentences) > s.cfg.MaxParagraphSentences {
			mid := len(sentences) / 2
			out = append(out, joinSentences(sentences[:mid]), joinSentences(sentences[mid:]))
			improvements = append(improvements, "Split long paragraph for mobile readability")
			continue
		}
		if changed {
			out = append(out, joinSentences(sentences))
			continue
		}
		out = append(out, para)
	}

	content := textmetrics.JoinParagraphs(out)
	return Result{Content: content, Metrics: s.metrics(content, improvements)}
}

func (s *Scorer) metrics(content string, improvements []string) Metrics {
	words := textmetrics.WordCount(content)
	sentences := len(textmetrics.Sentences(content))
	m := Metrics{
		TotalWords:          words,
		TotalSentences:      sentences,
		EstimatedGradeLevel: 8,
		ImprovementsMade:    improvements,
	}
	if m.ImprovementsMade == nil {
		m.ImprovementsMade = []string{}
	}
	if sentences > 0 {
		m.AvgSentenceLength = float64(words) / float64(sentences)
		m.EstimatedGradeLevel = clamp(m.AvgSentenceLength-5, 1, 12)
	}
	return m
}

// joinSentences rejoins sentence pieces, adding a full stop only where a
// piece does not already end in terminal punctuation.
func joinSentences(sentences []string) string {
	var sb strings.Builder
	for i, sentence := range sentences {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sentence)
		if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") && !strings.HasSuffix(sentence, "?") {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// asciiLower lowercases ASCII letters only so byte offsets stay aligned with the input.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
