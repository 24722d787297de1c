package types

// ATS risk tiers derived from the overall score.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Scores is the deterministic score breakdown. Each dimension is capped at
// 20; Overall is the exact sum of the five dimensions.
type Scores struct {
	Structure    int    `json:"structure"`
	Keywords     int    `json:"keywords"`
	Impact       int    `json:"impact"`
	Alignment    int    `json:"alignment"`
	Clarity      int    `json:"clarity"`
	Overall      int    `json:"overall"`
	ATSRiskLevel string `json:"ats_risk_level"`
}
