// Package scoring maps detected CV signals to a deterministic score breakdown.
// Scoring is pure and local: the same signals always produce the same scores,
// with no provider involvement.
package scoring

import "github.com/jonathan/cv-scorer/internal/types"

const (
	structureBase = 10
	keywordsBase  = 5
	impactBase    = 5
	alignmentBase = 5
	clarityBase   = 5

	maxDimensionScore = 20

	lowRiskThreshold    = 75
	mediumRiskThreshold = 50
)

// Score computes the full breakdown from one set of signals. Every dimension
// lands in [base, 20] and the overall is the exact sum of the five dimensions.
func Score(signals *types.Signals) *types.Scores {
	scores := &types.Scores{
		Structure: scoreStructure(&signals.Structure),
		Keywords:  scoreKeywords(&signals.Keywords),
		Impact:    scoreImpact(&signals.Impact),
		Alignment: scoreAlignment(&signals.Alignment),
		Clarity:   scoreClarity(&signals.Clarity),
	}
	scores.Overall = scores.Structure + scores.Keywords + scores.Impact +
		scores.Alignment + scores.Clarity
	scores.ATSRiskLevel = RiskTier(scores.Overall)
	return scores
}

// RiskTier maps an overall score to its ATS risk tier.
func RiskTier(overall int) string {
	switch {
	case overall >= lowRiskThreshold:
		return types.RiskLow
	case overall >= mediumRiskThreshold:
		return types.RiskMedium
	default:
		return types.RiskHigh
	}
}

func scoreStructure(s *types.StructureSignals) int {
	score := structureBase

	switch s.SectionOrderQuality {
	case types.QualityGood:
		score += 4
	case types.QualityAverage:
		score += 2
	}

	switch s.FormattingConsistency {
	case types.QualityGood:
		score += 4
	case types.QualityAverage:
		score += 2
	}

	if len(s.ATSRiskElements) == 0 {
		score += 2
	}

	return clampDimension(score)
}

func scoreKeywords(s *types.KeywordSignals) int {
	score := keywordsBase

	switch s.KeywordDensityLevel {
	case types.LevelHigh:
		score += 6
	case types.LevelModerate:
		score += 3
	}

	switch s.RoleAlignment {
	case types.FitStrong:
		score += 6
	case types.FitPartial:
		score += 3
	}

	if len(s.MissingKeywords) <= 2 {
		score += 3
	}

	return clampDimension(score)
}

func scoreImpact(s *types.ImpactSignals) int {
	score := impactBase

	switch s.QuantificationLevel {
	case types.LevelHigh:
		score += 7
	case types.LevelModerate:
		score += 3
	}

	switch s.ActionVerbStrength {
	case types.FitStrong:
		score += 5
	case types.QualityAverage:
		score += 2
	}

	if s.QuantifiedBulletCount >= 3 {
		score += 3
	}

	return clampDimension(score)
}

func scoreAlignment(s *types.AlignmentSignals) int {
	score := alignmentBase

	switch s.RoleFit {
	case types.FitStrong:
		score += 6
	case types.FitPartial:
		score += 3
	}

	if s.SeniorityMatch == types.SeniorityMatch {
		score += 5
	}

	switch s.IndustryRelevance {
	case types.LevelHigh:
		score += 4
	case types.LevelModerate:
		score += 2
	}

	return clampDimension(score)
}

func scoreClarity(s *types.ClaritySignals) int {
	score := clarityBase

	switch s.Readability {
	case types.QualityGood:
		score += 5
	case types.QualityAverage:
		score += 2
	}

	switch s.SummaryQuality {
	case types.QualityGood:
		score += 5
	case types.QualityAverage:
		score += 2
	}

	switch s.BuzzwordDensity {
	case types.LevelLow:
		score += 5
	case types.LevelModerate:
		score += 2
	}

	return clampDimension(score)
}

func clampDimension(score int) int {
	if score > maxDimensionScore {
		return maxDimensionScore
	}
	return score
}
