package textmetrics

import (
	"regexp"
	"strings"
)

// Metrics summarises the shape of a text. Sentences are the non-blank pieces
// between '.' characters and paragraphs the non-blank pieces between blank lines.
type Metrics struct {
	Words                int      `json:"total_words"`
	Sentences            int      `json:"total_sentences"`
	Paragraphs           int      `json:"total_paragraphs"`
	AvgWordsPerSentence  float64  `json:"avg_sentence_length"`
	AvgWordsPerParagraph float64  `json:"avg_paragraph_length"`
	HasHeaders           bool     `json:"has_headers"`
	HasBullets           bool     `json:"has_bullet_points"`
	StructureIssues      []string `json:"structure_issues"`
}

var (
	headerPattern = regexp.MustCompile(`(?m)^#+\s`)
	bulletPattern = regexp.MustCompile(`(?m)^\s*[•\-\*]\s`)
)

const paragraphSep = "\n\n"

// Analyze computes word, sentence and paragraph statistics for text.
func Analyze(text string) Metrics {
	sentences := Sentences(text)
	paragraphs := Paragraphs(text)

	m := Metrics{
		Words:           WordCount(text),
		Sentences:       len(sentences),
		Paragraphs:      len(paragraphs),
		HasHeaders:      HasHeaders(text),
		HasBullets:      HasBullets(text),
		StructureIssues: []string{},
	}

	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += WordCount(s)
		}
		m.AvgWordsPerSentence = float64(total) / float64(len(sentences))
	}
	if len(paragraphs) > 0 {
		total := 0
		for _, p := range paragraphs {
			total += WordCount(p)
		}
		m.AvgWordsPerParagraph = float64(total) / float64(len(paragraphs))
	}

	if m.AvgWordsPerSentence > 25 {
		m.StructureIssues = append(m.StructureIssues, "Sentences too long for easy reading")
	}
	if m.AvgWordsPerParagraph > 100 {
		m.StructureIssues = append(m.StructureIssues, "Paragraphs too long for mobile reading")
	}
	if m.Words > 200 && !m.HasHeaders {
		m.StructureIssues = append(m.StructureIssues, "Long content needs headers for better navigation")
	}
	return m
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Sentences splits on '.' and drops blank pieces. The pieces are trimmed and
// do not carry the period.
func Sentences(text string) []string {
	return nonBlank(strings.Split(text, "."))
}

// Paragraphs splits on blank lines and drops blank pieces.
func Paragraphs(text string) []string {
	return nonBlank(strings.Split(text, paragraphSep))
}

// RawParagraphs splits on blank lines keeping every piece untouched, so that
// strings.Join(RawParagraphs(t), "\n\n") == t.
func RawParagraphs(text string) []string {
	return strings.Split(text, paragraphSep)
}

// JoinParagraphs is the inverse of RawParagraphs.
func JoinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, paragraphSep)
}

func HasHeaders(text string) bool {
	return headerPattern.MatchString(text)
}

func HasBullets(text string) bool {
	return bulletPattern.MatchString(text)
}

func nonBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
