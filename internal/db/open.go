// Package db opens the content store selected by configuration.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio/internal/config"
	"portfolio/internal/kv"
)

// Open returns the persisted store for cfg.Driver.
func Open(ctx context.Context, cfg config.Storage, log *slog.Logger) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; content is lost on restart")
		return kv.NewMemory(), nil

	case config.DriverMongo:
		log.Info("connecting to MongoDB", "database", cfg.MongoDatabase)
		database, err := Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Info("connected to MongoDB")
		return kv.NewMongo(database, "content"), nil

	case config.DriverSQLite:
		log.Info("opening SQLite database", "path", cfg.SQLitePath)
		s, err := kv.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
