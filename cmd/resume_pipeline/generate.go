package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pipeline/internal/config"
	"github.com/jonathan/resume-pipeline/internal/ingestion"
	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/logging"
	"github.com/jonathan/resume-pipeline/internal/observability"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
	"github.com/jonathan/resume-pipeline/internal/rendering"
	"github.com/jonathan/resume-pipeline/internal/store"
	"github.com/jonathan/resume-pipeline/internal/synthesis"
	"github.com/jonathan/resume-pipeline/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume from a job posting and profile",
	Long: `Runs the full pipeline: requirement extraction -> repository scoring -> content synthesis -> document rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath  string
	genJob         string
	genProfile     string
	genBio         string
	genOut         string
	genName        string
	genEmail       string
	genLocation    string
	genAPIKey      string
	genModel       string
	genDatabaseURL string
	genCompiler    string
	genVerbose     bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&genJob, "job", "j", "", "Path to job posting file (.txt or .html)")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to profile snapshot JSON file")
	generateCmd.Flags().StringVar(&genBio, "bio", "", "Short candidate bio for content synthesis")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output path (extension chosen from the render result when omitted)")
	generateCmd.Flags().StringVarP(&genName, "name", "n", "", "Candidate name")
	generateCmd.Flags().StringVar(&genEmail, "email", "", "Candidate email")
	generateCmd.Flags().StringVar(&genLocation, "location", "", "Candidate location")
	generateCmd.Flags().StringVar(&genCompiler, "compiler", "", "LaTeX compiler binary (defaults to pdflatex)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed pipeline output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Gemini model for synthesis (optional, defaults to GEMINI_MODEL env var)")

	// Database URL for requirement caching and resume records
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in the config file)")
	}
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (or set 'profile' in the config file)")
	}

	log, err := logging.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	jobText, jobHTML, err := loadJob(cfg.Job)
	if err != nil {
		return err
	}

	// LLM client is optional; without a key synthesis uses the fallback path
	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, llmConfig(cfg.Model), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Println("Continuing without persistence...")
		} else {
			defer st.Close()
			if err := st.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: failed to prepare schema: %v\n", err)
				st.Close()
				st = nil
			}
		}
	}

	pipe := pipeline.New(pipeline.Options{
		Client: client,
		Store:  st,
		Renderer: rendering.New(rendering.Options{
			Compiler: cfg.Compiler,
			Timeout:  time.Duration(cfg.RenderTimeout) * time.Second,
			WorkRoot: cfg.WorkDir,
		}),
		Synthesis: synthesis.Options{
			Timeout: time.Duration(cfg.SynthesisTimeout) * time.Second,
		},
		Logger: log,
	})

	result, err := pipe.Run(ctx, pipeline.Request{
		JobText: jobText,
		JobHTML: jobHTML,
		Profile: profile,
		Bio:     genBio,
		Identity: rendering.Identity{
			Name:     cfg.Name,
			Email:    cfg.Email,
			Location: cfg.Location,
		},
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRequirements(result.Requirements)
		printer.PrintRanking(result.Ranked)
		printer.PrintTailoredContent(result.Content)
		printer.PrintRenderResult(result.Document)
	}

	outPath := cfg.Out
	if outPath == "" {
		outPath = result.Document.Filename()
	}
	if err := os.WriteFile(outPath, result.Document.Bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %s (%s, %s render, %s synthesis)\n",
		outPath, result.Document.MIMEType, result.Document.RenderMode, result.Content.SynthesisMode)
	return nil
}

// mergedConfig layers config file, CLI flags, and environment variables.
// Flags win over the file; the environment fills whatever is still empty.
func mergedConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("job") {
		cfg.Job = genJob
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = genProfile
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = genOut
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = genName
	}
	if cmd.Flags().Changed("email") {
		cfg.Email = genEmail
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = genLocation
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}
	if cmd.Flags().Changed("compiler") {
		cfg.Compiler = genCompiler
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// llmConfig applies an optional model override to the default tier map.
func llmConfig(model string) *llm.Config {
	cfg := llm.DefaultConfig()
	if model != "" {
		cfg = cfg.WithModel(llm.TierStandard, model)
	}
	return cfg
}

func loadProfile(path string) (*types.ProfileSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.ProfileSnapshot
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

// loadJob reads the posting and decides whether it needs HTML extraction
// based on the file extension.
func loadJob(path string) (jobText, jobHTML string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read job file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		return "", string(data), nil
	}
	return ingestion.CleanText(string(data)), "", nil
}
