package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/db"
	"portfolio/internal/kv"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site with an editable content store",
	Long: `portfolio serves a personal portfolio site: public pages, a password
gated dashboard for editing projects, categories, about and contact content,
a JSON API and an MCP endpoint. Content is persisted in memory, SQLite or
MongoDB.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file (YAML)")
	rootCmd.AddCommand(serveCmd, resetCmd, exportCmd)
}

// newLogger writes text logs to w. Commands pass stderr; stdout carries
// command output such as export.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openRepo opens the configured store and loads content from it. The
// caller closes the returned store.
func openRepo(cfg *config.Config, logger *slog.Logger) (*content.Repo, kv.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, nil, err
	}
	repo := content.NewRepo(store, logger)
	if err := repo.Load(ctx); err != nil {
		closeStore(store, logger)
		return nil, nil, err
	}
	return repo, store, nil
}

func closeStore(store kv.Store, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logger.Warn("failed to close store", "error", err)
	}
}
