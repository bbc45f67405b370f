package team

import "contentteam/internal/editor"

// DeliverableSection is one numbered block of a campaign brief.
type DeliverableSection struct {
	Heading string
	Items   []string
}

// Deliverables is the content-type specific half of the kickoff: what the
// team must hand over and the market rules that apply to it.
type Deliverables struct {
	Title        string
	Sections     []DeliverableSection
	Requirements []DeliverableSection
}

// DeliverablesFor returns the campaign brief for ct. General content has no
// deliverables beyond the shared requirements.
func DeliverablesFor(ct editor.ContentType) Deliverables {
	switch ct {
	case editor.SocialMedia:
		return Deliverables{
			Title: "SOCIAL MEDIA CAMPAIGN PROJECT - INDIAN MARKET",
			Sections: []DeliverableSection{
				{"Instagram Posts (3-5 posts with captions and hashtags)", []string{
					"Carousel posts for educational content",
					"Story templates with Indian design elements",
					"Reel scripts with trending Indian audio/music suggestions",
				}},
				{"LinkedIn Professional Content", []string{
					"Thought leadership posts for Indian business community",
					"Company update templates",
					"Industry insight posts with Indian market data",
				}},
				{"Facebook Posts for Broader Reach", []string{
					"Community-focused content",
					"Event promotion templates",
					"Customer testimonial formats",
				}},
				{"Twitter/X Content", []string{
					"Thread templates on relevant topics",
					"Quick tips and insights",
					"Live-tweeting templates for Indian events",
				}},
				{"WhatsApp Business Messages", []string{
					"Customer communication templates",
					"Promotional message formats",
					"Order confirmation and support templates",
				}},
			},
			Requirements: []DeliverableSection{
				{"INDIAN SOCIAL MEDIA REQUIREMENTS", []string{
					"Use trending Indian hashtags and topics",
					"Include festival and cultural tie-ins",
					"Optimize for peak Indian social media hours (7-9 PM)",
					"Consider regional language hashtags",
					"Include appropriate emojis for Indian audience",
					"Include call-to-actions relevant to Indian users (UPI payments, WhatsApp contact)",
				}},
				{"PLATFORM OPTIMIZATION", []string{
					"Instagram: Visual storytelling with Indian aesthetics",
					"LinkedIn: Professional networking in Indian business context",
					"Facebook: Community building and local engagement",
					"Twitter: Real-time engagement with Indian trends",
					"WhatsApp: Personal, direct communication style",
				}},
			},
		}
	case editor.Blog:
		return Deliverables{
			Title: "BLOG ARTICLE PROJECT - INDIAN MARKET FOCUS",
			Sections: []DeliverableSection{
				{"Article Structure", []string{
					"Compelling headline optimized for Indian search behavior",
					"Meta description (150-160 characters) with Indian keywords",
					"Introduction with Indian market context and statistics",
					"Main content sections with clear headers (H2, H3)",
					"Indian case studies and examples throughout",
					"Actionable takeaways relevant to Indian business environment",
					"Conclusion with clear call-to-action for Indian readers",
					"Suggested internal linking topics for Indian websites",
				}},
				{"SEO Optimization", []string{
					"Primary keyword research for Indian market",
					"Secondary keyword integration throughout content",
					"Local SEO considerations for Indian cities",
					"Image suggestions with Indian context",
					"FAQ section addressing common Indian market questions",
				}},
			},
			Requirements: []DeliverableSection{
				{"BLOG CONTENT REQUIREMENTS", []string{
					"Include recent Indian market data and statistics",
					"Reference successful Indian companies and entrepreneurs",
					"Address common challenges faced by Indian businesses",
					"Provide solutions relevant to Indian market conditions",
					"Optimize for Indian search queries and voice search",
				}},
			},
		}
	case editor.Email:
		return Deliverables{
			Title: "EMAIL MARKETING CAMPAIGN - INDIAN AUDIENCE",
			Sections: []DeliverableSection{
				{"Email Series", []string{
					"Welcome Email Series (3-5 emails)",
					"Promotional Campaign Emails",
					"Newsletter Template",
					"Abandoned Cart Recovery (for e-commerce)",
					"Customer Retention Emails",
					"Festival/Seasonal Campaign Emails",
				}},
				{"Content Elements", []string{
					"Personalized greetings with Indian cultural context",
					"Local testimonials and success stories",
					"Region-specific offers and promotions",
					"Trust signals important to Indian consumers",
					"Clear value propositions in Indian context",
				}},
			},
			Requirements: []DeliverableSection{
				{"INDIAN EMAIL MARKETING CONSIDERATIONS", []string{
					"Mobile-first design (most Indian readers open email on mobile)",
					"Hindi subject lines where appropriate",
					"Regional festival greetings and offers",
					"UPI payment integration mentions",
					"WhatsApp contact options",
				}},
				{"COMPLIANCE REQUIREMENTS", []string{
					"CAN-SPAM compliance",
					"Indian data protection considerations",
					"Unsubscribe options in local languages",
					"Contact information with Indian address",
				}},
			},
		}
	case editor.CompetitorAnalysis:
		return Deliverables{
			Title: "COMPETITOR CONTENT ANALYSIS - INDIAN MARKET",
			Sections: []DeliverableSection{
				{"Content Strategy Assessment", []string{
					"Content types and formats used",
					"Publishing frequency and timing",
					"Engagement levels and audience response",
				}},
				{"Cultural Adaptation Analysis", []string{
					"How well competitor adapts to Indian culture",
					"Regional customization strategies",
					"Festival and seasonal content approach",
				}},
				{"SEO and Digital Marketing Assessment", []string{
					"Keyword strategy for Indian market",
					"Social media presence and engagement",
					"Local SEO and business listings",
				}},
				{"Opportunities and Gaps", []string{
					"Underserved audience segments",
					"Content gaps in Indian market",
					"Improvement opportunities",
				}},
				{"Strategic Recommendations", []string{
					"Content differentiation strategies",
					"Cultural positioning opportunities",
					"Market penetration tactics",
				}},
			},
			Requirements: []DeliverableSection{
				{"INDIAN MARKET ANALYSIS FOCUS", []string{
					"Regional market penetration",
					"Cultural sensitivity and adaptation",
					"Price positioning and value communication",
					"Trust building strategies",
					"Community engagement approaches",
					"Festival and seasonal marketing effectiveness",
				}},
			},
		}
	default:
		return Deliverables{Title: "CONTENT CREATION PROJECT - INDIAN MARKET FOCUS"}
	}
}
