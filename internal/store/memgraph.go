package store

import (
	"context"
	"fmt"
	"time"

	"github.com/agenthands/kgraph/internal/driver"
)

// MemgraphStore keeps values as strings on (:KGState {key}) nodes.
type MemgraphStore struct {
	driver driver.GraphDriver
}

// NewMemgraphStore builds the key index and takes ownership of d.
func NewMemgraphStore(ctx context.Context, d driver.GraphDriver) (*MemgraphStore, error) {
	if err := d.BuildIndices(ctx); err != nil {
		return nil, fmt.Errorf("failed to build indices: %w", err)
	}
	return &MemgraphStore{driver: d}, nil
}

func (s *MemgraphStore) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.driver.ExecuteQuery(ctx, driver.GetStateQuery, map[string]any{"key": key})
	if err != nil {
		return nil, fmt.Errorf("memgraph get %s: %w", key, err)
	}
	if len(res.Records) == 0 {
		return nil, ErrNotFound
	}
	v, ok := res.Records[0].Get("value")
	if !ok || v == nil {
		return nil, ErrNotFound
	}
	str, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("memgraph get %s: unexpected value type %T", key, v)
	}
	return []byte(str), nil
}

func (s *MemgraphStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.driver.ExecuteQuery(ctx, driver.SaveStateQuery, map[string]any{
		"key":        key,
		"value":      string(value),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("memgraph set %s: %w", key, err)
	}
	return nil
}

func (s *MemgraphStore) Close() error {
	return s.driver.Close(context.Background())
}

var _ Store = (*MemgraphStore)(nil)
