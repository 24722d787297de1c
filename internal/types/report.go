package types

// Report is the narrative explanation of a scored CV.
type Report struct {
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	ATSRiskExplanation string   `json:"ats_risk_explanation"`
}

// AnalysisResult is the full output of one pipeline run.
type AnalysisResult struct {
	ParsedCV *ParsedCV `json:"parsed_cv"`
	Signals  *Signals  `json:"signals"`
	Scores   *Scores   `json:"scores"`
	Report   *Report   `json:"report"`
}

// OptimizedSummary is a rewritten professional summary.
type OptimizedSummary struct {
	Text string `json:"text"`
}

// OptimizedBullets is one work-experience entry with rewritten bullets.
type OptimizedBullets struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	BulletPoints []string `json:"bullet_points"`
}

// OptimizeResult carries whichever rewrite was requested.
type OptimizeResult struct {
	Summary *OptimizedSummary  `json:"summary,omitempty"`
	Bullets []OptimizedBullets `json:"bullets,omitempty"`
}
