package team

import (
	"strings"
	"time"
)

// Role is a member of the content team.
type Role string

const (
	RoleProjectManager Role = "project_manager"
	RoleWriter         Role = "content_writer"
	RoleEditor         Role = "content_editor"
	RoleSEO            Role = "seo_specialist"
	RoleBrand          Role = "brand_strategist"
)

// Sequence is the order in which roles speak within a round.
var Sequence = []Role{RoleWriter, RoleEditor, RoleSEO, RoleBrand, RoleProjectManager}

// ProducesContent reports whether the role's reply replaces the working draft.
// The others give feedback on it.
func (r Role) ProducesContent() bool {
	switch r {
	case RoleWriter, RoleEditor, RoleSEO:
		return true
	default:
		return false
	}
}

// Title is the display name used in prompts and logs.
func (r Role) Title() string {
	switch r {
	case RoleProjectManager:
		return "Project Manager"
	case RoleWriter:
		return "Content Writer"
	case RoleEditor:
		return "Content Editor"
	case RoleSEO:
		return "SEO Specialist"
	case RoleBrand:
		return "Brand Strategist"
	default:
		return strings.ReplaceAll(string(r), "_", " ")
	}
}

// RoleSettings are the generation parameters for one role. Temperature is a
// pointer so that an explicit 0 is kept rather than replaced by the default.
type RoleSettings struct {
	Temperature    *float32 `yaml:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxTokens      int      `yaml:"max_tokens" validate:"gte=0"`
	TimeoutSeconds int      `yaml:"timeout_seconds" validate:"gte=0"`
}

// Temp returns the configured temperature, or 0 when none is set.
func (s RoleSettings) Temp() float32 {
	if s.Temperature == nil {
		return 0
	}
	return *s.Temperature
}

// Temperature returns a pointer to v for use in RoleSettings literals.
func Temperature(v float32) *float32 {
	return &v
}

func (s RoleSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func DefaultRoleSettings() map[Role]RoleSettings {
	return map[Role]RoleSettings{
		RoleProjectManager: {Temperature: Temperature(0.3), MaxTokens: 1000, TimeoutSeconds: 120},
		RoleWriter:         {Temperature: Temperature(0.7), MaxTokens: 2000, TimeoutSeconds: 180},
		RoleEditor:         {Temperature: Temperature(0.4), MaxTokens: 1500, TimeoutSeconds: 150},
		RoleSEO:            {Temperature: Temperature(0.2), MaxTokens: 800, TimeoutSeconds: 120},
		RoleBrand:          {Temperature: Temperature(0.5), MaxTokens: 1200, TimeoutSeconds: 150},
	}
}

// settingsFor fills unset fields of a configured role from the defaults.
func settingsFor(configured map[Role]RoleSettings, role Role) RoleSettings {
	def := DefaultRoleSettings()[role]
	s, ok := configured[role]
	if !ok {
		return def
	}
	if s.Temperature == nil {
		s.Temperature = def.Temperature
	}
	if s.MaxTokens <= 0 {
		s.MaxTokens = def.MaxTokens
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = def.TimeoutSeconds
	}
	return s
}

var systemPrompts = map[Role]string{
	RoleProjectManager: `You are the Project Manager of a content team serving the Indian market.
You review the latest draft against the brief and the team's feedback.
If the draft meets every requirement, reply with the exact phrase FINAL CONTENT APPROVED and a one-line summary.
Otherwise list the specific changes the writer must make next round.`,

	RoleWriter: `You are a Content Writer creating marketing content for Indian audiences.
Write in simple, accessible English at an 8th grade reading level.
Use Indian examples, rupee (₹) pricing and references to local festivals where they fit.
Keep paragraphs short for mobile readers and end with a clear call to action.
Reply with the full content only.`,

	RoleEditor: `You are a Content Editor reviewing marketing content for the Indian market.
Fix grammar and spelling, shorten long sentences, and remove culturally insensitive or exclusive wording.
Keep the writer's voice and structure.
Reply with the full edited content only.`,

	RoleSEO: `You are an SEO Specialist optimising content for Indian search behaviour.
Work in local keywords (keyword + city), "near me" and voice-search phrasing naturally.
Keep keyword density between 0.5% and 2.5% and keep headings descriptive.
Reply with the full optimised content only.`,

	RoleBrand: `You are a Brand Strategist for the Indian market.
Check the draft against the brand positioning, archetype and voice in the brief.
Point out where trust signals, family values or regional relevance are missing.
Reply with concise feedback, not rewritten content.`,
}

// SystemPrompt returns the role's standing instructions.
func SystemPrompt(r Role) string {
	return systemPrompts[r]
}
