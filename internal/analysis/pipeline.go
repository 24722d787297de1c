package analysis

import (
	"context"

	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/scoring"
	"github.com/jonathan/cv-scorer/internal/types"
)

// RunPipeline orchestrates the full analysis over an already-constructed
// provider client: parse, detect signals, score locally, explain.
func RunPipeline(ctx context.Context, client llm.Client, req *types.AnalyzeRequest) (*types.AnalysisResult, error) {
	parsedCV, err := ParseCV(ctx, client, req.CVText)
	if err != nil {
		return nil, err
	}

	signals, err := DetectSignals(ctx, client, parsedCV, req.Context)
	if err != nil {
		return nil, err
	}

	// Scoring is local and cannot fail for well-typed signals.
	scores := scoring.Score(signals)

	report, err := GenerateReport(ctx, client, signals, scores)
	if err != nil {
		return nil, err
	}

	return &types.AnalysisResult{
		ParsedCV: parsedCV,
		Signals:  signals,
		Scores:   scores,
		Report:   report,
	}, nil
}

// AnalyzeCV runs the full pipeline with a fresh provider client.
// A missing API key surfaces as the provider's configuration error before any
// remote call is made.
func AnalyzeCV(ctx context.Context, req *types.AnalyzeRequest, apiKey string) (*types.AnalysisResult, error) {
	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	return RunPipeline(ctx, client, req)
}
