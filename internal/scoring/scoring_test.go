package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-scorer/internal/types"
)

func bestSignals() *types.Signals {
	return &types.Signals{
		Structure: types.StructureSignals{
			SectionOrderQuality:   types.QualityGood,
			FormattingConsistency: types.QualityGood,
			ATSRiskElements:       []string{},
		},
		Keywords: types.KeywordSignals{
			KeywordDensityLevel: types.LevelHigh,
			RoleAlignment:       types.FitStrong,
			MissingKeywords:     []string{},
		},
		Impact: types.ImpactSignals{
			QuantificationLevel:   types.LevelHigh,
			ActionVerbStrength:    types.FitStrong,
			QuantifiedBulletCount: 5,
		},
		Alignment: types.AlignmentSignals{
			RoleFit:           types.FitStrong,
			SeniorityMatch:    types.SeniorityMatch,
			IndustryRelevance: types.LevelHigh,
		},
		Clarity: types.ClaritySignals{
			Readability:     types.QualityGood,
			SummaryQuality:  types.QualityGood,
			BuzzwordDensity: types.LevelLow,
		},
	}
}

func worstSignals() *types.Signals {
	return &types.Signals{
		Structure: types.StructureSignals{
			SectionOrderQuality:   types.QualityPoor,
			FormattingConsistency: types.QualityPoor,
			ATSRiskElements:       []string{"tables", "columns"},
		},
		Keywords: types.KeywordSignals{
			KeywordDensityLevel: types.LevelLow,
			RoleAlignment:       types.FitWeak,
			MissingKeywords:     []string{"go", "kubernetes", "postgres"},
		},
		Impact: types.ImpactSignals{
			QuantificationLevel:   types.LevelLow,
			ActionVerbStrength:    types.FitWeak,
			QuantifiedBulletCount: 0,
		},
		Alignment: types.AlignmentSignals{
			RoleFit:           types.FitWeak,
			SeniorityMatch:    types.SeniorityUnderqualified,
			IndustryRelevance: types.LevelLow,
		},
		Clarity: types.ClaritySignals{
			Readability:     types.QualityPoor,
			SummaryQuality:  types.QualityPoor,
			BuzzwordDensity: types.LevelHigh,
		},
	}
}

func TestScoreAllGood(t *testing.T) {
	scores := Score(bestSignals())

	assert.Equal(t, 20, scores.Structure)
	assert.Equal(t, 20, scores.Keywords)
	assert.Equal(t, 20, scores.Impact)
	assert.Equal(t, 20, scores.Alignment)
	assert.Equal(t, 20, scores.Clarity)
	assert.Equal(t, 100, scores.Overall)
	assert.Equal(t, types.RiskLow, scores.ATSRiskLevel)
}

func TestScoreAllWorst(t *testing.T) {
	scores := Score(worstSignals())

	// No bonuses fire; every dimension sits at its base value.
	assert.Equal(t, 10, scores.Structure)
	assert.Equal(t, 5, scores.Keywords)
	assert.Equal(t, 5, scores.Impact)
	assert.Equal(t, 5, scores.Alignment)
	assert.Equal(t, 5, scores.Clarity)
	assert.Equal(t, 30, scores.Overall)
	assert.Equal(t, types.RiskHigh, scores.ATSRiskLevel)
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name    string
		signals *types.Signals
	}{
		{"best", bestSignals()},
		{"worst", worstSignals()},
		{
			"mixed",
			&types.Signals{
				Structure: types.StructureSignals{
					SectionOrderQuality:   types.QualityAverage,
					FormattingConsistency: types.QualityGood,
					ATSRiskElements:       []string{"photo"},
				},
				Keywords: types.KeywordSignals{
					KeywordDensityLevel: types.LevelModerate,
					RoleAlignment:       types.FitPartial,
					MissingKeywords:     []string{"go"},
				},
				Impact: types.ImpactSignals{
					QuantificationLevel:   types.LevelModerate,
					ActionVerbStrength:    types.QualityAverage,
					QuantifiedBulletCount: 2,
				},
				Alignment: types.AlignmentSignals{
					RoleFit:           types.FitPartial,
					SeniorityMatch:    types.SeniorityOverqualified,
					IndustryRelevance: types.LevelModerate,
				},
				Clarity: types.ClaritySignals{
					Readability:     types.QualityAverage,
					SummaryQuality:  types.QualityPoor,
					BuzzwordDensity: types.LevelModerate,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := Score(tt.signals)

			assert.GreaterOrEqual(t, scores.Structure, 10)
			for _, dim := range []int{scores.Structure, scores.Keywords, scores.Impact, scores.Alignment, scores.Clarity} {
				assert.GreaterOrEqual(t, dim, 5)
				assert.LessOrEqual(t, dim, 20)
			}

			sum := scores.Structure + scores.Keywords + scores.Impact + scores.Alignment + scores.Clarity
			assert.Equal(t, sum, scores.Overall, "overall must be the exact dimension sum")
		})
	}
}

func TestScoreStructureExample(t *testing.T) {
	// Good order, good formatting, no ATS risks: 10+4+4+2 clamped at 20.
	signals := &types.Signals{
		Structure: types.StructureSignals{
			SectionOrderQuality:   types.QualityGood,
			FormattingConsistency: types.QualityGood,
			ATSRiskElements:       []string{},
		},
	}

	scores := Score(signals)
	assert.Equal(t, 20, scores.Structure)
}

func TestRiskTierBoundaries(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{100, types.RiskLow},
		{75, types.RiskLow},
		{74, types.RiskMedium},
		{50, types.RiskMedium},
		{49, types.RiskHigh},
		{30, types.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskTier(tt.overall), "overall=%d", tt.overall)
	}
}

func TestScoreDeterministic(t *testing.T) {
	signals := bestSignals()
	first := Score(signals)

	for i := 0; i < 10; i++ {
		require.Equal(t, first, Score(signals))
	}
}
