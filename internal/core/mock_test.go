package core

import (
	"context"
	"errors"
	"sync"

	"github.com/agenthands/kgraph/internal/core/model"
	"github.com/agenthands/kgraph/internal/store"
)

type MockSuggester struct {
	Delta model.Delta
	Err   error
	// Block, when set, holds Suggest until it is closed.
	Block chan struct{}

	mu    sync.Mutex
	calls int
	text  string
}

func (m *MockSuggester) Suggest(ctx context.Context, nodes []model.Node, edges []model.Edge, sourceText string) (model.Delta, error) {
	m.mu.Lock()
	m.calls++
	m.text = sourceText
	m.mu.Unlock()
	if m.Block != nil {
		<-m.Block
	}
	if m.Err != nil {
		return model.Delta{}, m.Err
	}
	return m.Delta, nil
}

type MockResponder struct {
	Response string
	Err      error
	History  []model.ChatMessage
}

func (m *MockResponder) Reply(ctx context.Context, history []model.ChatMessage, text string) (string, error) {
	m.History = history
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// FailingStore reads like an empty store and rejects every write.
type FailingStore struct{}

func (FailingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, store.ErrNotFound
}

func (FailingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func (FailingStore) Close() error { return nil }
