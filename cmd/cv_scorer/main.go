// Package main provides the entry point for the CV scoring service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_scorer",
	Short: "CV Scorer HTTP API Server",
	Long:  "CV Scorer analyzes a CV against a target role, produces a deterministic five-dimension score with an ATS risk tier, and rewrites summaries and bullet points on request.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
