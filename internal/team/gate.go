package team

import (
	"fmt"
	"strings"

	"contentteam/internal/editor"
	"contentteam/internal/quality"
)

// Standard names understood by the gate.
const (
	StandardCulturalAppropriateness = "cultural_appropriateness"
	StandardReadability             = "readability"
	StandardLocalRelevance          = "local_relevance"
	StandardMobileOptimization      = "mobile_optimization"
	StandardCallToAction            = "call_to_action"
)

// Standard is one bar the project manager holds every draft to.
type Standard struct {
	Name        string   `yaml:"name" validate:"oneof=cultural_appropriateness readability local_relevance mobile_optimization call_to_action"`
	Description string   `yaml:"description"`
	Criteria    []string `yaml:"criteria"`
	MinScore    float64  `yaml:"min_score" validate:"gte=0,lte=100"`
}

func DefaultStandards() []Standard {
	return []Standard{
		{
			Name:        StandardCulturalAppropriateness,
			Description: "Content respects Indian cultural values and sensitivities",
			Criteria: []string{
				"No offensive or insensitive cultural references",
				"Appropriate use of regional context",
				"Inclusive representation across Indian communities",
				"Respectful treatment of religious and cultural practices",
			},
			MinScore: 95,
		},
		{
			Name:        StandardReadability,
			Description: "Content is accessible to diverse Indian audiences",
			Criteria: []string{
				"8th grade reading level or below",
				"Short paragraphs for mobile consumption",
				"Clear and simple language",
				"Logical flow and structure",
			},
			MinScore: 85,
		},
		{
			Name:        StandardLocalRelevance,
			Description: "Content includes Indian market context and examples",
			Criteria: []string{
				"Indian business examples or case studies",
				"Local market data and statistics",
				"Regional preferences consideration",
				"Indian currency and numbering systems",
			},
			MinScore: 80,
		},
		{
			Name:        StandardMobileOptimization,
			Description: "Content optimized for mobile consumption",
			Criteria: []string{
				"Short paragraphs (3-4 sentences max)",
				"Bullet points and lists for easy scanning",
				"Clear headers and subheaders",
				"Minimal horizontal scrolling required",
			},
			MinScore: 85,
		},
		{
			Name:        StandardCallToAction,
			Description: "Clear and appropriate CTAs for Indian market",
			Criteria: []string{
				"Culturally appropriate action requests",
				"Local contact methods (WhatsApp, phone)",
				"Indian payment method references when relevant",
				"Clear next steps for users",
			},
			MinScore: 75,
		},
	}
}

// Validation is the gate's verdict on one role's draft.
type Validation struct {
	Role        Role               `json:"role"`
	Passed      bool               `json:"passed"`
	Score       float64            `json:"score"`
	Scores      map[string]float64 `json:"scores"`
	Issues      []string           `json:"issues"`
	Suggestions []string           `json:"suggestions"`
}

// Status is the verdict as the project manager states it.
func (v Validation) Status() string {
	if v.Passed {
		return "APPROVED"
	}
	return "REVISION REQUIRED"
}

// Summary is a one-line verdict for the project manager's prompt.
func (v Validation) Summary() string {
	s := fmt.Sprintf("Quality Gate: %s (score %.1f/100)", v.Status(), v.Score)
	if len(v.Issues) > 0 {
		s += "; " + strings.Join(v.Issues, "; ")
	}
	return s
}

// Gate measures drafts locally against the quality standards.
type Gate struct {
	standards []Standard
	quality   *quality.Assessor
	editor    *editor.Editor
}

// NewGate builds a gate. Empty standards fall back to DefaultStandards.
func NewGate(standards []Standard, q *quality.Assessor, e *editor.Editor) *Gate {
	if len(standards) == 0 {
		standards = DefaultStandards()
	}
	if q == nil {
		q = quality.New(quality.DefaultConfig(), nil, nil, nil)
	}
	if e == nil {
		e = editor.New(editor.Deps{Quality: q})
	}
	return &Gate{standards: standards, quality: q, editor: e}
}

// Measure scores content on every standard the gate knows. Pass/fail
// checks count as 100 or 0.
func (g *Gate) Measure(content string) map[string]float64 {
	s := g.quality.Score(content)
	checks := g.editor.Check(content)
	return map[string]float64{
		StandardCulturalAppropriateness: passScore(checks.CulturallyAppropriate),
		StandardReadability:             s.Readability,
		StandardLocalRelevance:          s.Cultural,
		StandardMobileOptimization:      s.Mobile,
		StandardCallToAction:            passScore(checks.IncludesCallToAction),
	}
}

// Validate checks content produced by role against every standard. Score is
// the mean of all measured values.
func (g *Gate) Validate(role Role, content string) Validation {
	v := Validation{
		Role:        role,
		Passed:      true,
		Scores:      g.Measure(content),
		Issues:      []string{},
		Suggestions: []string{},
	}
	for _, st := range g.standards {
		score, ok := v.Scores[st.Name]
		if !ok {
			continue
		}
		if score < st.MinScore {
			v.Passed = false
			v.Issues = append(v.Issues, fmt.Sprintf("%s: Score %.1f below minimum %.0f", st.Name, score, st.MinScore))
			v.Suggestions = append(v.Suggestions, fmt.Sprintf("Improve %s: %s", st.Name, st.Description))
		}
	}
	total := 0.0
	for _, score := range v.Scores {
		total += score
	}
	v.Score = total / float64(len(v.Scores))
	return v
}

func passScore(ok bool) float64 {
	if ok {
		return 100
	}
	return 0
}

var roleGuidance = map[Role][]string{
	RoleWriter: {
		"Ensure content includes specific Indian examples and case studies",
		"Use conversational tone while maintaining professionalism",
		"Include regional references appropriate to target audience",
		"Optimize sentence length for mobile readability",
		"Add cultural hooks that resonate with Indian values",
	},
	RoleEditor: {
		"Focus on improving readability for diverse Indian education levels",
		"Verify all Indian market facts and statistics",
		"Check for appropriate Hindi phrase integration",
		"Ensure mobile-first paragraph structure",
		"Validate cultural sensitivity across all regions",
	},
	RoleSEO: {
		"Include Indian city names and local search terms",
		"Optimize for voice search queries common in India",
		"Consider regional language keyword variations",
		"Focus on mobile-first indexing requirements",
		"Include local business schema markup suggestions",
	},
	RoleBrand: {
		"Ensure messaging aligns with Indian consumer psychology",
		"Validate trust-building elements for Indian market",
		"Check family-oriented messaging where appropriate",
		"Confirm value proposition resonates with price-sensitive audience",
		"Verify community and social proof elements",
	},
}

// FeedbackMessage renders the project manager's feedback to role for v.
func FeedbackMessage(role Role, v Validation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FEEDBACK FOR %s\n", strings.ToUpper(role.Title()))
	fmt.Fprintf(&sb, "Overall Score: %.1f/100\n", v.Score)
	fmt.Fprintf(&sb, "Status: %s\n", v.Status())

	if len(v.Issues) > 0 {
		sb.WriteString("ISSUES TO ADDRESS:\n")
		for _, issue := range v.Issues {
			fmt.Fprintf(&sb, "  %s\n", issue)
		}
	}
	if len(v.Suggestions) > 0 {
		sb.WriteString("IMPROVEMENT SUGGESTIONS:\n")
		for _, s := range v.Suggestions {
			fmt.Fprintf(&sb, "  %s\n", s)
		}
	}
	if guidance := roleGuidance[role]; len(guidance) > 0 {
		fmt.Fprintf(&sb, "%s GUIDANCE:\n", strings.ToUpper(role.Title()))
		for _, g := range guidance {
			fmt.Fprintf(&sb, "  - %s\n", g)
		}
	}

	if v.Passed {
		sb.WriteString("EXCELLENT WORK! Content meets all quality standards.")
	} else {
		sb.WriteString("Please revise and resubmit after addressing the issues above.")
	}
	return sb.String()
}
