package team

import (
	"fmt"
	"strings"

	"contentteam/internal/editor"
	"contentteam/internal/lexicon"
)

// PromptBuilder renders the kickoff brief and the per-turn messages.
type PromptBuilder struct {
	Regional lexicon.Regional
}

// Kickoff enriches the raw brief with the content type's deliverables, brand
// strategy and Indian market context.
func (pb *PromptBuilder) Kickoff(rawBrief string, ct editor.ContentType, brand BrandAnalysis) string {
	d := DeliverablesFor(ct)

	var sb strings.Builder
	sb.WriteString(d.Title + "\n\n")
	fmt.Fprintf(&sb, "ORIGINAL BRIEF: %s\n\n", strings.TrimSpace(rawBrief))
	fmt.Fprintf(&sb, "CONTENT TYPE: %s\n\n", ct)

	if len(d.Sections) > 0 {
		sb.WriteString("DELIVERABLES REQUIRED:\n")
		writeSections(&sb, d.Sections)
	}
	for _, req := range d.Requirements {
		sb.WriteString(req.Heading + ":\n")
		for _, item := range req.Items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("BRAND STRATEGY CONTEXT:\n")
	fmt.Fprintf(&sb, "- Brand Positioning: %s\n", brand.Positioning.MessagingFocus)
	fmt.Fprintf(&sb, "- Brand Archetype: %s\n", brand.Archetype.Description)
	fmt.Fprintf(&sb, "- Brand Voice: %s\n", strings.Join(brand.PrimaryVoice, ", "))
	fmt.Fprintf(&sb, "- Cultural Hooks: %s\n", strings.Join(brand.CulturalHooks, ", "))
	fmt.Fprintf(&sb, "- Trust Strategy: Focus on %s\n\n", brand.TrustFocus())

	r := pb.Regional
	sb.WriteString("INDIAN MARKET CONTEXT:\n")
	fmt.Fprintf(&sb, "- Target Regions: %s\n", strings.Join(r.TargetRegions, ", "))
	fmt.Fprintf(&sb, "- Primary Language: %s\n", r.Languages.Primary)
	fmt.Fprintf(&sb, "- Cultural Context: Indian business ecosystem with focus on %s\n", strings.Join(r.CulturalContext.Festivals, ", "))
	fmt.Fprintf(&sb, "- Currency: %s\n", r.CulturalContext.Currency)
	sb.WriteString("- Market Segments: Metro, Tier-2, and Tier-3 cities\n\n")

	sb.WriteString("CONTENT REQUIREMENTS:\n")
	sb.WriteString("1. Use simple, accessible English (8th grade reading level)\n")
	sb.WriteString("2. Include relevant Indian examples and cultural references\n")
	sb.WriteString("3. Optimize for mobile-first consumption\n")
	sb.WriteString("4. Consider regional variations and cultural sensitivities\n")
	sb.WriteString("5. Include appropriate call-to-actions for Indian market\n")
	sb.WriteString("6. Ensure compliance with Indian advertising guidelines\n")
	return sb.String()
}

func writeSections(sb *strings.Builder, sections []DeliverableSection) {
	for i, sec := range sections {
		fmt.Fprintf(sb, "%d. %s\n", i+1, sec.Heading)
		for _, item := range sec.Items {
			fmt.Fprintf(sb, "   - %s\n", item)
		}
	}
	sb.WriteString("\n")
}

// Turn builds the message for one role given the current draft and the
// feedback gathered since it was written.
func (pb *PromptBuilder) Turn(role Role, kickoff, draft string, feedback []string) string {
	var sb strings.Builder
	sb.WriteString(kickoff)

	if draft != "" {
		sb.WriteString("\nCURRENT DRAFT:\n")
		sb.WriteString("----------------------------------------\n")
		sb.WriteString(draft)
		sb.WriteString("\n----------------------------------------\n")
	}
	if len(feedback) > 0 {
		sb.WriteString("\nTEAM FEEDBACK:\n")
		for _, f := range feedback {
			fmt.Fprintf(&sb, "- %s\n", f)
		}
	}

	sb.WriteString("\n**INSTRUCTION**:\n")
	switch {
	case role == RoleWriter && draft == "":
		sb.WriteString("Write the first draft.\n")
	case role == RoleWriter:
		sb.WriteString("Revise the draft to address the team feedback.\n")
	case role.ProducesContent():
		fmt.Fprintf(&sb, "As %s, return the improved draft.\n", role.Title())
	default:
		fmt.Fprintf(&sb, "As %s, review the draft.\n", role.Title())
	}
	return sb.String()
}
