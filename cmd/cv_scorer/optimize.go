package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-scorer/internal/observability"
	"github.com/jonathan/cv-scorer/internal/rewriting"
	"github.com/jonathan/cv-scorer/internal/types"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a summary or a CV's bullet points",
	Long: `Rewrite content for a target role. With --type summary, --content holds the
text to rewrite. With --type bullets, --parsed-cv points at a JSON file with a
parsed CV whose work-experience bullets are rewritten entry by entry.`,
	RunE: runOptimizeCmd,
}

var (
	optimizeType          string
	optimizeContent       string
	optimizeParsedCVPath  string
	optimizeTargetRole    string
	optimizeIndustry      string
	optimizeCareerLevel   string
	optimizeTargetCountry string
	optimizeAPIKey        string
)

func init() {
	optimizeCmd.Flags().StringVar(&optimizeType, "type", types.OptimizeTypeSummary, "What to rewrite: summary or bullets")
	optimizeCmd.Flags().StringVar(&optimizeContent, "content", "", "Summary text to rewrite (type summary)")
	optimizeCmd.Flags().StringVar(&optimizeParsedCVPath, "parsed-cv", "", "Path to a parsed CV JSON file (type bullets)")
	optimizeCmd.Flags().StringVar(&optimizeTargetRole, "target-role", "", "Role the rewrite targets")
	optimizeCmd.Flags().StringVar(&optimizeIndustry, "industry", "", "Target industry")
	optimizeCmd.Flags().StringVar(&optimizeCareerLevel, "career-level", "", "Career level")
	optimizeCmd.Flags().StringVar(&optimizeTargetCountry, "target-country", "", "Target country")
	optimizeCmd.Flags().StringVar(&optimizeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimizeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := optimizeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (--api-key or GEMINI_API_KEY)")
	}

	req := &types.OptimizeRequest{
		Type:    optimizeType,
		Content: optimizeContent,
		Context: types.TargetContext{
			TargetRole:    optimizeTargetRole,
			Industry:      optimizeIndustry,
			CareerLevel:   optimizeCareerLevel,
			TargetCountry: optimizeTargetCountry,
		},
	}

	if optimizeType == types.OptimizeTypeBullets {
		if optimizeParsedCVPath == "" {
			return fmt.Errorf("--parsed-cv is required for --type bullets")
		}
		data, err := os.ReadFile(optimizeParsedCVPath)
		if err != nil {
			return fmt.Errorf("failed to read parsed CV file: %w", err)
		}
		var cv types.ParsedCV
		if err := json.Unmarshal(data, &cv); err != nil {
			return fmt.Errorf("failed to parse CV JSON: %w", err)
		}
		req.CV = &cv
	}

	if err := req.Validate(); err != nil {
		return err
	}

	result, err := rewriting.Optimize(ctx, req, apiKey)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintOptimizeResult(result)
	return nil
}
