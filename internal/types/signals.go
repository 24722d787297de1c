package types

// Categorical levels used across the signal families. Detection prompts are
// constrained to these exact values; the scoring engine switches on them.
const (
	QualityGood    = "good"
	QualityAverage = "average"
	QualityPoor    = "poor"

	LevelHigh     = "high"
	LevelModerate = "moderate"
	LevelLow      = "low"

	FitStrong  = "strong"
	FitPartial = "partial"
	FitWeak    = "weak"

	SeniorityMatch          = "match"
	SeniorityOverqualified  = "overqualified"
	SeniorityUnderqualified = "underqualified"
)

// StructureSignals describe layout and ATS-parseability.
type StructureSignals struct {
	SectionOrderQuality   string   `json:"section_order_quality"`
	FormattingConsistency string   `json:"formatting_consistency"`
	ATSRiskElements       []string `json:"ats_risk_elements"`
	HasContactInfo        bool     `json:"has_contact_info"`
	SectionCount          int      `json:"section_count"`
}

// KeywordSignals describe keyword coverage against the target role.
type KeywordSignals struct {
	KeywordDensityLevel string   `json:"keyword_density_level"`
	RoleAlignment       string   `json:"role_alignment"`
	MatchedKeywords     []string `json:"matched_keywords"`
	MissingKeywords     []string `json:"missing_keywords"`
}

// ImpactSignals describe how measurable the achievements read.
type ImpactSignals struct {
	QuantificationLevel   string `json:"quantification_level"`
	ActionVerbStrength    string `json:"action_verb_strength"`
	QuantifiedBulletCount int    `json:"quantified_bullet_count"`
}

// AlignmentSignals describe fit with the target role and industry.
type AlignmentSignals struct {
	RoleFit           string `json:"role_fit"`
	SeniorityMatch    string `json:"seniority_match"`
	IndustryRelevance string `json:"industry_relevance"`
}

// ClaritySignals describe how the CV reads.
type ClaritySignals struct {
	Readability     string `json:"readability"`
	SummaryQuality  string `json:"summary_quality"`
	BuzzwordDensity string `json:"buzzword_density"`
}

// Signals bundles all five detected signal families.
type Signals struct {
	Structure StructureSignals `json:"structure"`
	Keywords  KeywordSignals   `json:"keywords"`
	Impact    ImpactSignals    `json:"impact"`
	Alignment AlignmentSignals `json:"alignment"`
	Clarity   ClaritySignals   `json:"clarity"`
}
