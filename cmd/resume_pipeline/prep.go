package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/logging"
	"github.com/jonathan/resume-pipeline/internal/observability"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
)

var prepCmd = &cobra.Command{
	Use:   "prep",
	Short: "Generate an interview preparation guide from a job posting",
	Long:  `Extracts requirements from a job posting and produces tailored interview tips, sample questions, and a winning strategy as JSON.`,
	RunE:  runPrep,
}

var (
	prepJob     string
	prepOut     string
	prepAPIKey  string
	prepModel   string
	prepVerbose bool
)

func init() {
	prepCmd.Flags().StringVarP(&prepJob, "job", "j", "", "Path to job posting file (.txt or .html)")
	prepCmd.Flags().StringVarP(&prepOut, "out", "o", "", "Output path for the guide JSON (stdout when omitted)")
	prepCmd.Flags().StringVar(&prepAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	prepCmd.Flags().StringVar(&prepModel, "model", "", "Gemini model (optional, defaults to GEMINI_MODEL env var)")
	prepCmd.Flags().BoolVarP(&prepVerbose, "verbose", "v", false, "Print a summary of the guide")
	rootCmd.AddCommand(prepCmd)
}

func runPrep(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if prepJob == "" {
		return fmt.Errorf("--job is required")
	}

	log, err := logging.New(false, prepVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jobText, jobHTML, err := loadJob(prepJob)
	if err != nil {
		return err
	}

	apiKey := prepAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	model := prepModel
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}

	var client llm.Client
	if apiKey != "" {
		client, err = llm.NewClient(ctx, llmConfig(model), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	pipe := pipeline.New(pipeline.Options{Client: client, Logger: log})

	result, err := pipe.Prep(ctx, pipeline.PrepRequest{
		JobText: jobText,
		JobHTML: jobHTML,
	})
	if err != nil {
		return err
	}

	if prepVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRequirements(result.Requirements)
		printer.PrintInterviewPrep(result.Prep)
	}

	data, err := json.MarshalIndent(result.Prep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode guide: %w", err)
	}
	data = append(data, '\n')

	if prepOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(prepOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Wrote %s (%s synthesis)\n", prepOut, result.Prep.SynthesisMode)
	return nil
}
