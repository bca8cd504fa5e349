package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", `{"x":1}`))
	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"x":1}`, v)

	require.NoError(t, s.Set(ctx, "a", "overwritten"))
	v, _, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "overwritten", v)

	require.NoError(t, s.SetMany(ctx, map[string]string{"b": "2", "c": "3"}))
	for k, want := range map[string]string{"b": "2", "c": "3"} {
		got, ok, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok, k)
		assert.Equal(t, want, got)
	}

	require.NoError(t, s.Delete(ctx, "a"))
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting twice is fine.
	require.NoError(t, s.Delete(ctx, "a"))
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestSQLiteMemory(t *testing.T) {
	s, err := OpenSQLiteMemory()
	require.NoError(t, err)
	defer s.Close(context.Background())

	testStore(t, s)
}

func TestSQLiteFile(t *testing.T) {
	path := t.TempDir() + "/data/portfolio.db"
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Close(ctx))

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close(ctx)

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMemoryFailWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", "v"))

	quota := errors.New("quota exceeded")
	m.FailWrites = quota

	assert.ErrorIs(t, m.Set(ctx, "k", "new"), quota)
	assert.ErrorIs(t, m.SetMany(ctx, map[string]string{"k": "new"}), quota)
	assert.ErrorIs(t, m.Delete(ctx, "k"), quota)

	v, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Close(ctx))

	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Set(ctx, "k", "v"), ErrClosed)
}

func TestMemoryKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SetMany(ctx, map[string]string{"b": "", "a": "", "c": ""}))
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestMemoryFailReads(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", "v"))

	offline := errors.New("offline")
	m.FailReads = offline

	_, ok, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, offline)
	assert.False(t, ok)
	assert.NoError(t, m.Set(ctx, "k", "w"))
}
