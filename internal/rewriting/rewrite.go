// Package rewriting provides the optimize stage: rewriting a professional
// summary or the bullet points of each work-experience entry to read stronger
// for the candidate's target.
package rewriting

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

// Optimize runs the requested rewrite with a fresh provider client.
func Optimize(ctx context.Context, req *types.OptimizeRequest, apiKey string) (*types.OptimizeResult, error) {
	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	switch req.Type {
	case types.OptimizeTypeSummary:
		summary, err := OptimizeSummary(ctx, client, req.Content, req.Context)
		if err != nil {
			return nil, err
		}
		return &types.OptimizeResult{Summary: summary}, nil
	case types.OptimizeTypeBullets:
		if req.CV == nil {
			return nil, fmt.Errorf("cv is required for bullet optimization")
		}
		bullets, err := OptimizeBullets(ctx, client, req.CV, req.Context)
		if err != nil {
			return nil, err
		}
		return &types.OptimizeResult{Bullets: bullets}, nil
	default:
		return nil, fmt.Errorf("unknown optimize type %q", req.Type)
	}
}

// OptimizeSummary rewrites a professional summary in a single provider call.
func OptimizeSummary(ctx context.Context, client llm.Client, content string, target types.TargetContext) (*types.OptimizedSummary, error) {
	contextJSON, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal target context: %w", err)
	}

	template := prompts.MustGet("optimize.json", "optimize-summary")
	prompt := prompts.Format(template, map[string]string{
		"Content": content,
		"Context": string(contextJSON),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to optimize summary",
			Cause:   err,
		}
	}

	var summary types.OptimizedSummary
	if err := decodePayload(schemas.OptimizedSummary, raw, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// OptimizeBullets rewrites every work-experience entry's bullets, one provider
// call per entry, issued concurrently. The stage waits for all entries; any
// failure cancels the siblings and fails the whole stage. Results keep the
// CV's entry order.
func OptimizeBullets(ctx context.Context, client llm.Client, cv *types.ParsedCV, target types.TargetContext) ([]types.OptimizedBullets, error) {
	if len(cv.WorkExperience) == 0 {
		return []types.OptimizedBullets{}, nil
	}

	contextJSON, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal target context: %w", err)
	}

	results := make([]types.OptimizedBullets, len(cv.WorkExperience))

	g, gCtx := errgroup.WithContext(ctx)
	for i, entry := range cv.WorkExperience {
		g.Go(func() error {
			rewritten, err := optimizeEntry(gCtx, client, entry, contextJSON)
			if err != nil {
				return err
			}
			results[i] = *rewritten
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// optimizeEntry rewrites the bullets of one work-experience entry.
func optimizeEntry(ctx context.Context, client llm.Client, entry types.WorkExperience, contextJSON []byte) (*types.OptimizedBullets, error) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal work experience: %w", err)
	}

	template := prompts.MustGet("optimize.json", "optimize-bullets")
	prompt := prompts.Format(template, map[string]string{
		"Experience": string(entryJSON),
		"Context":    string(contextJSON),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: fmt.Sprintf("failed to optimize bullets for %s at %s", entry.Title, entry.Company),
			Cause:   err,
		}
	}

	var rewritten types.OptimizedBullets
	if err := decodePayload(schemas.OptimizedBullets, raw, &rewritten); err != nil {
		return nil, err
	}

	return &rewritten, nil
}

// decodePayload validates a provider payload against its embedded schema and
// decodes it into out.
func decodePayload(schemaName, raw string, out any) error {
	if err := schemas.Validate(schemaName, raw); err != nil {
		return &ParseError{
			Message: "provider returned invalid " + schemaName + " payload",
			Cause:   err,
		}
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ParseError{
			Message: "failed to decode " + schemaName + " payload",
			Cause:   err,
		}
	}

	return nil
}
