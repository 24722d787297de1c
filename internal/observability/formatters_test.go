package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-scorer/internal/types"
)

func TestPrintParsedCV(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cv := &types.ParsedCV{
		ProfessionalSummary: "Backend engineer with a focus on payments.",
		WorkExperience: []types.WorkExperience{
			{Title: "Engineer", Company: "Acme", Dates: "2020-2023", BulletPoints: []string{"a", "b"}},
		},
		Skills: []string{"Go", "Postgres"},
	}

	p.PrintParsedCV(cv)
	output := buf.String()

	assert.Contains(t, output, "PARSED CV")
	assert.Contains(t, output, "Engineer, Acme")
	assert.Contains(t, output, "2020-2023")
	assert.Contains(t, output, "Go, Postgres")
}

func TestPrintParsedCV_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedCV(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSignals(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	signals := &types.Signals{
		Structure: types.StructureSignals{
			SectionOrderQuality:   types.QualityGood,
			FormattingConsistency: types.QualityAverage,
			ATSRiskElements:       []string{"tables"},
		},
		Keywords: types.KeywordSignals{
			KeywordDensityLevel: types.LevelModerate,
			RoleAlignment:       types.FitStrong,
		},
	}

	p.PrintSignals(signals)
	output := buf.String()

	assert.Contains(t, output, "DETECTED SIGNALS")
	assert.Contains(t, output, "order=good")
	assert.Contains(t, output, "ats_risks=1")
	assert.Contains(t, output, "alignment=strong")
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scores := &types.Scores{
		Structure: 20, Keywords: 14, Impact: 12, Alignment: 18, Clarity: 15,
		Overall: 79, ATSRiskLevel: types.RiskLow,
	}

	p.PrintScores(scores)
	output := buf.String()

	assert.Contains(t, output, "CV SCORES")
	assert.Contains(t, output, "79 / 100")
	assert.Contains(t, output, "Low")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.Report{
		Strengths:          []string{"Clear structure"},
		Weaknesses:         []string{"Few metrics"},
		ATSRiskExplanation: "Standard layout parses cleanly.",
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS REPORT")
	assert.Contains(t, output, "Clear structure")
	assert.Contains(t, output, "Few metrics")
}

func TestPrintOptimizeResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.OptimizeResult{
		Summary: &types.OptimizedSummary{Text: "Sharper summary."},
		Bullets: []types.OptimizedBullets{
			{Title: "Engineer", Company: "Acme", BulletPoints: []string{"Did a measurable thing"}},
		},
	}

	p.PrintOptimizeResult(result)
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZED SUMMARY")
	assert.Contains(t, output, "Sharper summary.")
	assert.Contains(t, output, "OPTIMIZED BULLETS")
	assert.Contains(t, output, "Engineer, Acme")
}
