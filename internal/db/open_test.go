package db

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/config"
	"portfolio/internal/kv"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.Storage{Driver: config.DriverMemory}, discard)
	require.NoError(t, err)
	assert.IsType(t, &kv.Memory{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portfolio.db")

	s, err := Open(ctx, config.Storage{Driver: config.DriverSQLite, SQLitePath: path}, discard)
	require.NoError(t, err)
	defer s.Close(ctx)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Storage{Driver: "etcd"}, discard)
	assert.Error(t, err)
}
