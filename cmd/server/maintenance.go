package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all persisted content and fall back to the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo, store, err := openRepo(cfg, logger)
		if err != nil {
			return fmt.Errorf("open content store: %w", err)
		}
		defer closeStore(store, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.Reset(ctx); err != nil {
			return err
		}
		logger.Info("persisted content cleared", "storage", cfg.Storage.Driver)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the current content as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr())
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo, store, err := openRepo(cfg, logger)
		if err != nil {
			return fmt.Errorf("open content store: %w", err)
		}
		defer closeStore(store, logger)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(repo.Snapshot())
	},
}
