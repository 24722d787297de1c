package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/prompts"
	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/types"
)

// GenerateReport turns Scores and Signals into the narrative Report.
func GenerateReport(ctx context.Context, client llm.Client, signals *types.Signals, scores *types.Scores) (*types.Report, error) {
	signalsJSON, err := json.Marshal(signals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signals: %w", err)
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scores: %w", err)
	}

	template := prompts.MustGet("analysis.json", "explain-report")
	prompt := prompts.Format(template, map[string]string{
		"Signals":   string(signalsJSON),
		"Scores":    string(scoresJSON),
		"RiskLevel": scores.ATSRiskLevel,
		"Overall":   fmt.Sprintf("%d", scores.Overall),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate report",
			Cause:   err,
		}
	}

	var report types.Report
	if err := decodePayload(schemas.Report, raw, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
