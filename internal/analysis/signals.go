package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/prompts"
	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/types"
)

// DetectSignals runs the five signal-detection sub-requests concurrently and
// waits for all of them. A failure in any sub-request cancels the siblings
// and fails the stage; no partial Signals object is ever returned.
func DetectSignals(ctx context.Context, client llm.Client, parsedCV *types.ParsedCV, target types.TargetContext) (*types.Signals, error) {
	cvJSON, err := json.Marshal(parsedCV)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parsed CV: %w", err)
	}
	contextJSON, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal target context: %w", err)
	}

	signals := &types.Signals{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return detectSignal(gCtx, client, "detect-structure", schemas.StructureSignals, cvJSON, contextJSON, &signals.Structure)
	})
	g.Go(func() error {
		return detectSignal(gCtx, client, "detect-keywords", schemas.KeywordSignals, cvJSON, contextJSON, &signals.Keywords)
	})
	g.Go(func() error {
		return detectSignal(gCtx, client, "detect-impact", schemas.ImpactSignals, cvJSON, contextJSON, &signals.Impact)
	})
	g.Go(func() error {
		return detectSignal(gCtx, client, "detect-alignment", schemas.AlignmentSignals, cvJSON, contextJSON, &signals.Alignment)
	})
	g.Go(func() error {
		return detectSignal(gCtx, client, "detect-clarity", schemas.ClaritySignals, cvJSON, contextJSON, &signals.Clarity)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return signals, nil
}

// detectSignal issues one signal-family sub-request and decodes the result
// into out. Each goroutine writes to its own Signals field, so no locking is
// needed around the shared struct.
func detectSignal(ctx context.Context, client llm.Client, promptKey, schemaName string, cvJSON, contextJSON []byte, out any) error {
	template := prompts.MustGet("analysis.json", promptKey)
	prompt := prompts.Format(template, map[string]string{
		"ParsedCV": string(cvJSON),
		"Context":  string(contextJSON),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return &APICallError{
			Message: "failed to detect " + schemaName,
			Cause:   err,
		}
	}

	return decodePayload(schemaName, raw, out)
}
