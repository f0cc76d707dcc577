// ABOUTME: Root command wiring for the sqlagent CLI
// ABOUTME: Builds the shared agent from config, storage, and the OpenAI gateway
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/agent"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/config"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/llm"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/logging"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/storage/sqlite"
)

var quiet bool

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlagent",
		Short: "Natural-language to SQL agent with layered safety checks",
		Long: `sqlagent converts natural-language questions about the product catalog
into guarded, read-only SQL and executes them against a local SQLite store.

Every request passes intent classification, prompt safety checks, and
statement validation before anything reaches the database.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(NewQueryCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// buildAgent assembles the pipeline from configuration. The returned cleanup
// releases the store and flushes logs; call it at command exit.
func buildAgent() (*agent.Agent, *config.Config, func(), error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.RequireOpenAIKey(); err != nil {
		return nil, nil, nil, err
	}

	log := logging.New(logging.Options{FilePath: cfg.LogPath, Console: !quiet})

	store, err := sqlite.NewStorage(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing storage: %w", err)
	}

	gateway, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		ChatModel:  cfg.ChatModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, nil, fmt.Errorf("initializing gateway: %w", err)
	}

	a := agent.New(store, gateway, log)

	cleanup := func() {
		a.Close()
		_ = log.Sync()
	}
	return a, cfg, cleanup, nil
}

// buildStorage opens just the store, for commands that never call the model
func buildStorage() (*sqlite.Storage, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logging.New(logging.Options{FilePath: cfg.LogPath, Console: !quiet})

	store, err := sqlite.NewStorage(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, log, nil
}
