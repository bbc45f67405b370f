package brief

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Field names a value pulled out of a free-text brief.
type Field string

const (
	FieldBusinessName Field = "business_name"
	FieldLocation     Field = "location"
	FieldPriceRange   Field = "price_range"
	FieldTargetAge    Field = "target_age_range"
)

// Rule is one pattern in a field's fallback chain.
type Rule struct {
	Pattern *regexp.Regexp
	Extract func(match []string) string
}

// FieldRules is the ordered chain for one field. Rules run against the
// lowercased brief and the first match wins, so reordering changes results.
type FieldRules struct {
	Field     Field
	Rules     []Rule
	Default   string
	TitleCase bool
}

func group1(m []string) string { return m[1] }

func rangeOf(prefix string) func([]string) string {
	return func(m []string) string { return prefix + m[1] + "-" + m[2] }
}

// labelStart finds a following "field:" or "field name:" label inside a capture.
var labelStart = regexp.MustCompile(`\s+[a-z]+(?:\s+name)?:`)

// nonPlaceWords mark a comma piece as the start of another brief detail.
var nonPlaceWords = []string{
	"price", "priced", "prices", "pricing", "budget", "cost", "costs",
	"target", "targeting", "audience", "for", "with", "aged", "age", "ages",
	"serving", "offering", "selling", "contact", "phone", "email",
	"create", "write", "need", "needs", "want", "wants", "our", "we",
}

// placeList keeps the comma separated place names at the start of a
// capture and stops at the first piece that reads like another field.
func placeList(m []string) string {
	v := m[1]
	if loc := labelStart.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	var places []string
	for i, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" || (i > 0 && !placeName(part)) {
			break
		}
		places = append(places, part)
	}
	return strings.Join(places, ", ")
}

// placeName accepts up to four words made of letters, hyphens and apostrophes.
func placeName(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if slices.Contains(nonPlaceWords, w) {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' {
				return false
			}
		}
	}
	return true
}

// DefaultRules returns the built-in extraction chains.
func DefaultRules() []FieldRules {
	return []FieldRules{
		{
			Field:     FieldBusinessName,
			Default:   "Your Business",
			TitleCase: true,
			Rules: []Rule{
				{regexp.MustCompile(`restaurant name:\s*([^,\n]+)`), group1},
				{regexp.MustCompile(`(?:business|brand) name:\s*([^,\n]+)`), group1},
				{regexp.MustCompile(`business:\s*([^,\n]+)`), group1},
				{regexp.MustCompile(`company:\s*([^,\n]+)`), group1},
			},
		},
		{
			Field:     FieldLocation,
			Default:   "India",
			TitleCase: true,
			Rules: []Rule{
				{regexp.MustCompile(`location:\s*([^\n.;]+)`), placeList},
				{regexp.MustCompile(`based in:\s*([^,\n]+)`), group1},
				{regexp.MustCompile(`\bin\s+([a-z]+(?:\s+[a-z]+)*),`), group1},
			},
		},
		{
			Field:   FieldPriceRange,
			Default: "₹200-500",
			Rules: []Rule{
				{regexp.MustCompile(`₹(\d+)-(\d+)`), rangeOf("₹")},
				{regexp.MustCompile(`₹\s*(\d+)\s*(?:-|to)\s*₹?\s*(\d+)`), rangeOf("₹")},
				{regexp.MustCompile(`(?:rs\.?|inr)\s*(\d+)\s*(?:-|to)\s*(\d+)`), rangeOf("₹")},
			},
		},
		{
			Field:   FieldTargetAge,
			Default: "25-35",
			Rules: []Rule{
				{regexp.MustCompile(`(?:ages?|aged)\s*(?:group|range)?\s*:?\s*(\d{1,2})\s*(?:-|to)\s*(\d{1,2})`), rangeOf("")},
				{regexp.MustCompile(`(\d+)-(\d+)`), rangeOf("")},
			},
		},
	}
}

// apply runs the chain and reports which rule matched (-1 for the default).
func (f FieldRules) apply(lower string) (string, int) {
	for i, r := range f.Rules {
		m := r.Pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		v := strings.TrimRight(strings.TrimSpace(r.Extract(m)), ".;:!")
		if v == "" {
			continue
		}
		return v, i
	}
	return f.Default, -1
}
