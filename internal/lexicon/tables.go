// Package lexicon holds the static rule tables shared by the analysis packages.
// Tables are ordered where order matters: classification walks buckets top to
// bottom and the first bucket with a matching keyword wins.
package lexicon

import "regexp"

// Bucket maps a label to the keywords that select it.
type Bucket struct {
	Label    string
	Keywords []string
}

// Classify returns the label of the first bucket with a keyword present in
// text, or fallback when none matches.
func Classify(text string, buckets []Bucket, fallback string) string {
	for _, b := range buckets {
		if ContainsAny(text, b.Keywords) {
			return b.Label
		}
	}
	return fallback
}

// ClassifyAll returns every bucket label with a keyword present in text.
func ClassifyAll(text string, buckets []Bucket) []string {
	var labels []string
	for _, b := range buckets {
		if ContainsAny(text, b.Keywords) {
			labels = append(labels, b.Label)
		}
	}
	return labels
}

// Replacement pairs a term with the wording that should replace it.
type Replacement struct {
	Term        string
	Alternative string
}

// Rewrite is a case-insensitive regex substitution applied by the editor.
type Rewrite struct {
	Pattern     *regexp.Regexp
	Replacement string
}

var SensitiveTerms = []string{
	"backward",
	"primitive",
	"uneducated",
	"illiterate",
	"poor people",
	"rich people",
	"typical indian",
	"all indians",
	"village people",
}

// HardSensitiveTerms fail the final approval check outright.
var HardSensitiveTerms = []string{"backward", "primitive", "illiterate"}

// IndianCities is the list regional balance is measured against.
var IndianCities = []string{
	"mumbai",
	"delhi",
	"bangalore",
	"chennai",
	"kolkata",
	"hyderabad",
	"pune",
}

var ExclusiveTerms = []Replacement{
	{Term: "guys", Alternative: "everyone"},
	{Term: "manpower", Alternative: "workforce"},
	{Term: "chairman", Alternative: "chairperson"},
}

// IndianContextIndicators mark content as locally relevant.
var IndianContextIndicators = []string{
	"india", "indian", "mumbai", "delhi", "bangalore", "chennai",
	"rupee", "₹", "lakh", "crore", "diwali", "holi",
	"bollywood", "cricket", "chai", "namaste",
}

var EngagementPunctuation = []string{"?", "!"}

var EngagementPronouns = []string{"you", "your", "we", "our"}

// SplitConjunctions are tried in order when breaking long sentences.
var SplitConjunctions = []string{"and", "but", "however", "because", "since", "while"}

var CTAPhrases = []string{
	"contact us", "call now", "visit", "click here", "learn more",
	"get started", "sign up", "subscribe", "download", "book now",
}

// CTAVerbs is the looser set used by the final approval check.
var CTAVerbs = []string{"contact", "call", "visit", "order", "buy", "click", "share", "comment"}

var ListIndicators = []string{"benefits include", "features are", "we offer", "services include"}

var TimePressurePhrases = []string{"deadline", "limited time", "expires soon", "last chance"}

var GrammarFixes = []Rewrite{
	{regexp.MustCompile(`(?i)\bvery much\b`), "very"},
	{regexp.MustCompile(`(?i)\bgood enough\b`), "sufficient"},
	{regexp.MustCompile(`(?i)\btoo much\b`), "excessive"},
	{regexp.MustCompile(`(?i)\bonly and only\b`), "only"},
	{regexp.MustCompile(`(?i)\bdo one thing\b`), "please"},
	{regexp.MustCompile(`(?i)\bkinldy\b`), "kindly"},
	{regexp.MustCompile(`(?i)\bteh\b`), "the"},
	{regexp.MustCompile(`(?i)\brecieve\b`), "receive"},
}

var CapitalizedTerms = []Rewrite{
	{regexp.MustCompile(`(?i)\bindia\b`), "India"},
	{regexp.MustCompile(`(?i)\bindian\b`), "Indian"},
	{regexp.MustCompile(`(?i)\bmumbai\b`), "Mumbai"},
	{regexp.MustCompile(`(?i)\bdelhi\b`), "Delhi"},
	{regexp.MustCompile(`(?i)\bbangalore\b`), "Bangalore"},
	{regexp.MustCompile(`(?i)\bchennai\b`), "Chennai"},
	{regexp.MustCompile(`(?i)\bdiwali\b`), "Diwali"},
	{regexp.MustCompile(`(?i)\bholi\b`), "Holi"},
}

var Festivals = []string{"diwali", "holi", "eid", "christmas", "dussehra", "ganesh chaturthi"}

var SeasonalKeywords = []string{
	"diwali offers", "festival sale", "monsoon special", "summer collection",
	"winter wear", "new year deals", "holi celebration", "eid special",
	"independence day offer", "wedding season", "back to school", "karva chauth",
}

var ContentTypes = []Bucket{
	{"social_media_campaign", []string{"social media", "instagram", "facebook", "linkedin", "twitter"}},
	{"blog_article", []string{"blog", "article", "post", "thought leadership"}},
	{"email_campaign", []string{"email", "newsletter", "campaign"}},
	{"website_content", []string{"website", "landing page", "web copy"}},
	{"product_content", []string{"menu", "product description", "catalog"}},
}

var Industries = []Bucket{
	{"technology", []string{"tech", "software", "digital", "app", "platform", "ai", "ml"}},
	{"healthcare", []string{"health", "healthcare", "medical", "doctor", "hospital", "clinic", "medicine", "wellness"}},
	{"education", []string{"education", "learning", "school", "course", "training", "skill"}},
	{"finance", []string{"finance", "banking", "bank", "investment", "money", "loan", "insurance", "fintech"}},
	{"food", []string{"food", "restaurant", "cuisine", "recipe", "cooking", "meal", "cafe", "dining"}},
	{"retail", []string{"retail", "shopping", "store", "product", "sale", "customer", "ecommerce", "e-commerce"}},
}

var BusinessTypes = []Bucket{
	{"startup", []string{"startup"}},
	{"sme", []string{"sme", "small business"}},
	{"enterprise", []string{"enterprise", "large company"}},
	{"family_business", []string{"family business"}},
}

// Audiences is evaluated with ClassifyAll; every matching segment is kept.
var Audiences = []Bucket{
	{"young_professionals", []string{"young professional", "young professionals", "professionals", "career", "graduate", "employee"}},
	{"students", []string{"student", "students", "college", "university"}},
	{"entrepreneurs", []string{"entrepreneur", "entrepreneurs", "business owners", "founder", "founders", "sme"}},
	{"families_with_children", []string{"family", "families", "children", "kids", "parent", "parents", "mother", "father"}},
	{"seniors", []string{"senior", "seniors", "elderly", "retirement", "pension"}},
}

var Requirements = []Bucket{
	{"instagram_optimized_content", []string{"instagram"}},
	{"professional_business_content", []string{"linkedin"}},
	{"whatsapp_business_ready", []string{"whatsapp"}},
	{"email_marketing_format", []string{"email"}},
	{"seo_optimized_blog_post", []string{"blog"}},
	{"lead_generation_focused", []string{"lead generation", "leads"}},
	{"brand_awareness_campaign", []string{"brand awareness"}},
	{"sales_conversion_oriented", []string{"sales", "conversion"}},
	{"high_engagement_content", []string{"engagement"}},
	{"festival_themed_content", []string{"festival", "diwali", "holi"}},
	{"regional_customization", []string{"local", "regional"}},
	{"hindi_integration", []string{"hindi"}},
}

// CityVariant lists the spellings that all refer to the same city.
type CityVariant struct {
	City     string
	Variants []string
}

var CityVariants = []CityVariant{
	{"mumbai", []string{"mumbai", "bombay"}},
	{"delhi", []string{"delhi", "new delhi"}},
	{"bangalore", []string{"bangalore", "bengaluru"}},
	{"chennai", []string{"chennai", "madras"}},
	{"kolkata", []string{"kolkata", "calcutta"}},
	{"hyderabad", []string{"hyderabad"}},
	{"pune", []string{"pune"}},
	{"ahmedabad", []string{"ahmedabad"}},
}

// RegionExpansion expands a broad region mention into concrete places.
type RegionExpansion struct {
	Phrases []string
	Places  []string
}

var RegionExpansions = []RegionExpansion{
	{[]string{"north india", "northern india"}, []string{"delhi", "punjab", "haryana", "rajasthan"}},
	{[]string{"south india", "southern india"}, []string{"chennai", "bangalore", "hyderabad", "kerala"}},
	{[]string{"west india", "western india"}, []string{"mumbai", "pune", "ahmedabad", "gujarat"}},
	{[]string{"east india", "eastern india"}, []string{"kolkata", "bhubaneswar"}},
}

var usps = map[string][]string{
	"food": {
		"Authentic recipes from traditional Indian kitchens",
		"Fresh ingredients sourced daily from local markets",
		"Family-friendly atmosphere with quick service",
	},
	"technology": {
		"Cutting-edge solutions built for Indian market",
		"24/7 customer support in multiple languages",
		"Affordable pricing with enterprise-grade quality",
	},
	"retail": {
		"Wide selection of authentic Indian products",
		"Free delivery across major Indian cities",
		"Easy returns and genuine quality guarantee",
	},
}

var defaultUSPs = []string{
	"Trusted quality you can depend on",
	"Customer-first approach with personalized service",
	"Competitive pricing with premium experience",
}

// USPs returns the selling points for an industry, or the generic set.
func USPs(industry string) []string {
	if list, ok := usps[industry]; ok {
		return list
	}
	return defaultUSPs
}

var offerings = map[string]string{
	"food":       "authentic cuisine and dining experience",
	"technology": "innovative technology solutions",
	"retail":     "quality products with convenient shopping",
	"education":  "comprehensive learning solutions",
}

// Offering returns the headline offering for an industry.
func Offering(industry string) string {
	if o, ok := offerings[industry]; ok {
		return o
	}
	return "premium products and services"
}

var secondaryKeywords = map[string][]string{
	"food":       {"restaurant near me", "best food delivery", "family restaurant", "veg restaurant", "home delivery"},
	"technology": {"software company", "app development", "it services", "digital solutions", "tech startup"},
	"retail":     {"online shopping", "free delivery", "cash on delivery", "best price", "genuine products"},
	"education":  {"online course", "coaching classes", "certification", "skill development", "exam preparation"},
	"healthcare": {"clinic near me", "doctor consultation", "health checkup", "online pharmacy", "wellness centre"},
	"finance":    {"personal loan", "insurance plan", "mutual funds", "tax saving", "upi payments"},
}

// SecondaryKeywords returns the supporting keyword set for an industry; unknown industries get none.
func SecondaryKeywords(industry string) []string {
	return secondaryKeywords[industry]
}
