package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/kgraph/internal/config"
	"github.com/agenthands/kgraph/internal/driver"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, KeyNodes)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyNodes, []byte(`[{"id":"a"}]`)))
	require.NoError(t, s.Set(ctx, KeyEdges, []byte(`[]`)))
	require.NoError(t, s.Set(ctx, KeyNodes, []byte(`[{"id":"b"}]`)))

	got, err := s.Get(ctx, KeyNodes)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b"}]`, string(got))

	got, err = s.Get(ctx, KeyEdges)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	assert.NoError(t, s.Close())
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	v := []byte("abc")
	require.NoError(t, s.Set(context.Background(), "k", v))
	v[0] = 'x'
	got, _ := s.Get(context.Background(), "k")
	assert.Equal(t, "abc", string(got))
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Path())
	exerciseStore(t, s)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"nodes.json", "edges.json"}, names, "no temp files left behind")
}

func TestFileStore_KeyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "store"))
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "../escape", []byte("x")))
	_, err = os.Stat(filepath.Join(dir, "escape.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestMemgraphStore(t *testing.T) {
	ctx := context.Background()
	mock := &MockDriver{}
	s, err := NewMemgraphStore(ctx, mock)
	require.NoError(t, err)
	assert.True(t, mock.IndicesBuilt)

	_, err = s.Get(ctx, KeyChatHistory)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, driver.GetStateQuery, mock.QueryExecuted)
	assert.Equal(t, KeyChatHistory, mock.QueryParams["key"])

	require.NoError(t, s.Set(ctx, KeyEdges, []byte(`[{"source":"a","target":"b"}]`)))
	assert.Equal(t, driver.SaveStateQuery, mock.QueryExecuted)
	assert.Equal(t, `[{"source":"a","target":"b"}]`, mock.QueryParams["value"])
	assert.NotEmpty(t, mock.QueryParams["updated_at"])

	mock.MockResult = neo4j.EagerResult{
		Keys:    []string{"value"},
		Records: []*neo4j.Record{{Keys: []string{"value"}, Values: []any{`[]`}}},
	}
	got, err := s.Get(ctx, KeyEdges)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	mock.MockResult.Records[0].Values = []any{int64(4)}
	_, err = s.Get(ctx, KeyEdges)
	assert.ErrorContains(t, err, "unexpected value type")

	mock.Err = errors.New("connection reset")
	assert.ErrorContains(t, s.Set(ctx, KeyNodes, nil), "connection reset")

	require.NoError(t, s.Close())
	assert.True(t, mock.Closed)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRedisStore(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}, nil)
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestNew_Backends(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	cfg.Store.Backend = "memory"
	s, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	cfg.Store.Backend = "file"
	cfg.Store.Path = t.TempDir()
	s, err = New(ctx, cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	cfg.Store.Backend = "sqlite"
	_, err = New(ctx, cfg, nil)
	assert.ErrorContains(t, err, "unsupported store backend")
}
