// Package cli provides the command-line interface for rag-indexer.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rag-indexer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rag-indexer/internal/adapters/driven/console"
	"github.com/custodia-labs/rag-indexer/internal/adapters/driven/llamastack"
	"github.com/custodia-labs/rag-indexer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rag-indexer/internal/connectors/filesystem"
	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
	"github.com/custodia-labs/rag-indexer/internal/core/services"
	"github.com/custodia-labs/rag-indexer/internal/logger"
	"github.com/custodia-labs/rag-indexer/internal/postprocessors/chunker"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rag-indexer",
	Short: "Index plain-text documents into a Llama Stack vector store",
	Long: `rag-indexer splits every matching document in a directory into overlapping
word windows and inserts each window into a Llama Stack vector store, creating
the store first when it does not exist.

Settings come from built-in defaults, an optional TOML file (--config) and
environment variables, in increasing order of precedence.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runIndex,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	indexer, err := newIndexer(cfg, console.New(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	result, err := indexer.Run(ctx)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	logger.Debug("run %s indexed %d/%d chunks", result.RunID, result.ChunksIndexed, result.ChunksAttempted)
	return nil
}

// loadConfig resolves settings from defaults, the optional config file and the environment.
func loadConfig() (*domain.IndexerConfig, error) {
	var store driven.ConfigStore = memory.NewConfigStore()
	if configPath != "" {
		fileStore, err := file.NewConfigStore(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		store = fileStore
	}

	logger.Section("Configuration")
	if path := store.Path(); path != "" {
		logger.Debug("config file: %s", path)
	}
	cfg, err := services.NewSettingsService(store, os.LookupEnv).Get()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("server=%s docs=%s ext=%s store=%s chunk=%d/%d concurrency=%d rps=%g",
		cfg.Server.BaseURL, cfg.Index.DocsDir, cfg.Index.Extension, cfg.Index.StoreName,
		cfg.Chunking.Size, cfg.Chunking.Overlap, cfg.Upload.Concurrency, cfg.Upload.RequestsPerSecond)

	return cfg, nil
}

// newIndexer wires the adapters for one run.
func newIndexer(cfg *domain.IndexerConfig, reporter driven.Reporter) (*services.Indexer, error) {
	processor, err := chunker.New(
		chunker.WithChunkSize(cfg.Chunking.Size),
		chunker.WithOverlap(cfg.Chunking.Overlap),
	)
	if err != nil {
		return nil, err
	}

	client := llamastack.NewClient(llamastack.Config{
		BaseURL:           cfg.Server.BaseURL,
		StoreTimeout:      cfg.Server.StoreTimeout,
		InsertTimeout:     cfg.Server.InsertTimeout,
		RequestsPerSecond: cfg.Upload.RequestsPerSecond,
	})

	source := filesystem.New(cfg.Index.DocsDir, cfg.Index.Extension)

	return services.NewIndexer(client, source, processor, reporter, services.IndexerOptions{
		StoreName:   cfg.Index.StoreName,
		Concurrency: cfg.Upload.Concurrency,
	}), nil
}
