// Package store persists session values (the node list, the edge list and
// the chat transcript) as opaque JSON blobs under fixed keys.
//
// Backends:
//   - memory: process-local, for tests and throwaway sessions
//   - file: one JSON file per key in a directory (default)
//   - redis: shared across instances, keys carry a prefix
//   - memgraph: (:KGState {key, value}) nodes over Bolt
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/config"
	"github.com/agenthands/kgraph/internal/driver"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("not found")

// Keys used by the session.
const (
	KeyNodes       = "nodes"
	KeyEdges       = "edges"
	KeyChatHistory = "chatHistory"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// New opens the backend named by cfg.Store.Backend.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend := strings.ToLower(cfg.Store.Backend)

	switch backend {
	case "", "file":
		s, err := NewFileStore(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return s, nil

	case "memory":
		return NewMemoryStore(), nil

	case "redis":
		s, err := NewRedisStore(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		return s, nil

	case "memgraph":
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger)
		if err != nil {
			return nil, err
		}
		s, err := NewMemgraphStore(ctx, d)
		if err != nil {
			_ = d.Close(ctx)
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", backend)
	}
}
