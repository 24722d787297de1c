package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-scorer/internal/analysis"
	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/observability"
	"github.com/jonathan/cv-scorer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV from a local text file",
	Long: `Run the full analysis pipeline on a local CV file: parse, detect signals,
score deterministically and generate a narrative report.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeCV            string
	analyzeTargetRole    string
	analyzeIndustry      string
	analyzeCareerLevel   string
	analyzeTargetCountry string
	analyzeAPIKey        string
	analyzeVerbose       bool
	analyzeJSONOut       bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVar(&analyzeCV, "cv", "", "Path to CV text file")
	analyzeCmd.Flags().StringVar(&analyzeTargetRole, "target-role", "", "Role the CV is being scored against")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Target industry")
	analyzeCmd.Flags().StringVar(&analyzeCareerLevel, "career-level", "", "Career level (junior, mid, senior, ...)")
	analyzeCmd.Flags().StringVar(&analyzeTargetCountry, "target-country", "", "Target country")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeJSONOut, "json", false, "Print the raw result as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// CLI overrides take priority over config file values
	if cmd.Flags().Changed("cv") {
		cfg.CV = analyzeCV
	}
	if cmd.Flags().Changed("target-role") {
		cfg.TargetRole = analyzeTargetRole
	}
	if cmd.Flags().Changed("industry") {
		cfg.Industry = analyzeIndustry
	}
	if cmd.Flags().Changed("career-level") {
		cfg.CareerLevel = analyzeCareerLevel
	}
	if cmd.Flags().Changed("target-country") {
		cfg.TargetCountry = analyzeTargetCountry
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	cfg.FromEnv()

	if cfg.CV == "" {
		return fmt.Errorf("--cv is required (path to a CV text file)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (--api-key or GEMINI_API_KEY)")
	}

	cvText, err := os.ReadFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	req := &types.AnalyzeRequest{
		CVText: string(cvText),
		Context: types.TargetContext{
			TargetRole:    cfg.TargetRole,
			Industry:      cfg.Industry,
			CareerLevel:   cfg.CareerLevel,
			TargetCountry: cfg.TargetCountry,
		},
	}
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := analysis.AnalyzeCV(ctx, req, cfg.APIKey)
	if err != nil {
		return err
	}

	if analyzeJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintParsedCV(result.ParsedCV)
		printer.PrintSignals(result.Signals)
	}
	printer.PrintScores(result.Scores)
	printer.PrintReport(result.Report)
	return nil
}
