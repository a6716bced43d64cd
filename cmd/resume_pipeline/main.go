// Package main provides the entry point for the resume pipeline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_pipeline",
	Short: "Tailored resume generator",
	Long:  "resume_pipeline extracts requirements from a job posting, ranks the candidate's repositories against them, synthesizes tailored resume content, and renders a PDF (or plain-text fallback).",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
