// Package analysis provides the CV analysis pipeline: parse the resume text,
// detect categorical ATS signals, score them locally, and explain the result.
// Each remote stage is a structured-JSON request against the LLM provider;
// the first stage failure aborts the rest of the pipeline.
package analysis

import (
	"context"
	"encoding/json"

	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/prompts"
	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/types"
)

// ParseCV extracts a structured ParsedCV from raw resume text.
func ParseCV(ctx context.Context, client llm.Client, cvText string) (*types.ParsedCV, error) {
	template := prompts.MustGet("analysis.json", "parse-cv")
	prompt := prompts.Format(template, map[string]string{
		"CVText": cvText,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to parse CV",
			Cause:   err,
		}
	}

	var parsed types.ParsedCV
	if err := decodePayload(schemas.ParsedCV, raw, &parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// decodePayload validates a provider payload against its embedded schema and
// decodes it into out. Validation failure is a ParseError, never a partial
// decode.
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
