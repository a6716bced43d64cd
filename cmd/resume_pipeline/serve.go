package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/logging"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
	"github.com/jonathan/resume-pipeline/internal/server"
	"github.com/jonathan/resume-pipeline/internal/store"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume generation over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	log, err := logging.New(true, serveVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// LLM client is optional; without a key synthesis uses the fallback path
	var client llm.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err = llm.NewClient(ctx, llmConfig(os.Getenv("GEMINI_MODEL")), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	// Persistence is optional too
	var st *store.Store
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		st, err = store.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := st.EnsureSchema(ctx); err != nil {
			st.Close()
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
	}

	pipe := pipeline.New(pipeline.Options{
		Client: client,
		Store:  st,
		Logger: log,
	})

	srv, err := server.New(server.Config{
		Port:     servePort,
		Pipeline: pipe,
		Store:    st,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(serveCtx)
	g.Go(func() error {
		// Stop the pruner once the server exits, error or not
		defer cancel()
		return srv.Start()
	})
	if st != nil {
		g.Go(func() error {
			pruneCache(gctx, st, log)
			return nil
		})
	}
	return g.Wait()
}

// pruneCache removes expired requirement-cache rows on an hourly tick until
// the group context is cancelled.
func pruneCache(ctx context.Context, st *store.Store, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := st.PruneExpiredRequirements(ctx)
			if err != nil {
				log.Warn("cache prune failed", zap.Error(err))
			} else if n > 0 {
				log.Debug("pruned requirement cache", zap.Int64("deleted", n))
			}
		}
	}
}
