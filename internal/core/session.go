// Package core ties the graph engine, the LLM collaborators and the store
// into one explicit session.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/core/merge"
	"github.com/agenthands/kgraph/internal/core/model"
	"github.com/agenthands/kgraph/internal/core/seed"
	"github.com/agenthands/kgraph/internal/store"
)

var (
	// ErrBusy is returned when another analysis, chat or merge is in flight.
	ErrBusy = errors.New("session is busy")

	ErrEmptyMessage = errors.New("message is empty")

	// ErrPersist wraps store failures that happen after an operation has
	// already taken effect in memory.
	ErrPersist = errors.New("persistence failed")
)

// Suggester proposes additions to the graph.
type Suggester interface {
	Suggest(ctx context.Context, nodes []model.Node, edges []model.Edge, sourceText string) (model.Delta, error)
}

// Responder answers a chat message given the transcript so far.
type Responder interface {
	Reply(ctx context.Context, history []model.ChatMessage, text string) (string, error)
}

type Options struct {
	Coordinator *merge.Coordinator
	Suggester   Suggester
	Responder   Responder
	// Store may be nil, in which case nothing is persisted.
	Store    store.Store
	Greeting string
	Logger   *zap.Logger
}

// Session holds one user's graph, chat transcript and uploaded source text.
// At most one of analyze, chat and merge runs at a time; Status reports
// which.
type Session struct {
	mu         sync.RWMutex
	state      merge.State
	history    []model.ChatMessage
	sourceText string
	status     model.Status

	coordinator *merge.Coordinator
	suggester   Suggester
	responder   Responder
	store       store.Store
	greeting    string
	log         *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		status:      model.StatusIdle,
		coordinator: opts.Coordinator,
		suggester:   opts.Suggester,
		responder:   opts.Responder,
		store:       opts.Store,
		greeting:    opts.Greeting,
		log:         logger.Named("session"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Init loads the persisted graph and transcript. A missing or undecodable
// graph falls back to the seed graph; a missing transcript starts with the
// greeting. Metrics are computed before the state becomes visible.
func (s *Session) Init(ctx context.Context) error {
	var (
		nodes   []model.Node
		edges   []model.Edge
		history []model.ChatMessage
	)

	nodesOK, err := s.load(ctx, store.KeyNodes, &nodes)
	if err != nil {
		return err
	}
	edgesOK, err := s.load(ctx, store.KeyEdges, &edges)
	if err != nil {
		return err
	}
	if !nodesOK || !edgesOK {
		s.log.Info("No stored graph; starting from seed")
		nodes, edges = seed.Nodes(), seed.Edges()
	}

	chatOK, err := s.load(ctx, store.KeyChatHistory, &history)
	if err != nil {
		return err
	}
	if !chatOK {
		history = []model.ChatMessage{s.message(model.RoleModel, s.greeting)}
	}

	state := s.coordinator.Recompute(merge.State{Nodes: nodes, Edges: edges})

	s.mu.Lock()
	s.state = state
	s.history = history
	s.status = model.StatusIdle
	s.mu.Unlock()

	s.log.Info("Session initialized",
		zap.Int("nodes", len(state.Nodes)),
		zap.Int("edges", len(state.Edges)),
		zap.Int("messages", len(history)))
	return nil
}

// load decodes key into dst. It reports false when the key is absent or
// holds something undecodable, and fails only when the store does.
func (s *Session) load(ctx context.Context, key string, dst any) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	data, err := s.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn("Discarding corrupt stored value", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Snapshot returns copies of the current nodes and edges.
func (s *Session) Snapshot() merge.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return merge.State{
		Nodes: append([]model.Node{}, s.state.Nodes...),
		Edges: append([]model.Edge{}, s.state.Edges...),
	}
}

func (s *Session) Status() model.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Session) History() []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ChatMessage{}, s.history...)
}

// SetContext replaces the uploaded source text used by Analyze.
func (s *Session) SetContext(text string) {
	s.mu.Lock()
	s.sourceText = text
	s.mu.Unlock()
}

func (s *Session) Context() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourceText
}

func (s *Session) begin(status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != model.StatusIdle {
		return ErrBusy
	}
	s.status = status
	return nil
}

func (s *Session) setStatus(status model.Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Merge folds delta into the graph and persists the result. A persistence
// error is returned after the merge has already taken effect in memory.
func (s *Session) Merge(ctx context.Context, delta model.Delta) (merge.Report, error) {
	if err := s.begin(model.StatusUpdating); err != nil {
		return merge.Report{}, err
	}
	defer s.setStatus(model.StatusIdle)

	return s.apply(ctx, delta)
}

// Analyze asks the suggestion source for a delta and merges it. On failure
// the graph is left untouched. A suggestion without nodes is not merged,
// even when it carries edges.
func (s *Session) Analyze(ctx context.Context) (merge.Report, error) {
	if err := s.begin(model.StatusAnalyzing); err != nil {
		return merge.Report{}, err
	}
	defer s.setStatus(model.StatusIdle)

	snap := s.Snapshot()
	delta, err := s.suggester.Suggest(ctx, snap.Nodes, snap.Edges, s.Context())
	if err != nil {
		s.log.Error("Analysis failed", zap.Error(err))
		return merge.Report{}, fmt.Errorf("analysis failed: %w", err)
	}
	if len(delta.Nodes) == 0 {
		s.log.Info("Analysis proposed no nodes; skipping merge", zap.Int("edges", len(delta.Edges)))
		return merge.Report{}, nil
	}

	s.setStatus(model.StatusUpdating)
	return s.apply(ctx, delta)
}

func (s *Session) apply(ctx context.Context, delta model.Delta) (merge.Report, error) {
	s.mu.RLock()
	current := s.state
	s.mu.RUnlock()

	next, report := s.coordinator.Merge(current, delta)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	if err := s.persistGraph(ctx, next); err != nil {
		s.log.Error("Failed to persist graph", zap.Error(err))
		return report, err
	}
	return report, nil
}

// Chat sends text to the persona. The user message and the reply are
// appended together, and only when the reply succeeds.
func (s *Session) Chat(ctx context.Context, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}
	if err := s.begin(model.StatusChatting); err != nil {
		return model.ChatMessage{}, err
	}
	defer s.setStatus(model.StatusIdle)

	reply, err := s.responder.Reply(ctx, s.History(), text)
	if err != nil {
		s.log.Error("Chat failed", zap.Error(err))
		return model.ChatMessage{}, fmt.Errorf("chat failed: %w", err)
	}

	answer := s.message(model.RoleModel, reply)
	s.mu.Lock()
	s.history = append(s.history, s.message(model.RoleUser, text), answer)
	history := append([]model.ChatMessage{}, s.history...)
	s.mu.Unlock()

	if err := s.persist(ctx, store.KeyChatHistory, history); err != nil {
		s.log.Error("Failed to persist chat history", zap.Error(err))
		return answer, err
	}
	return answer, nil
}

func (s *Session) message(role model.Role, content string) model.ChatMessage {
	return model.ChatMessage{
		ID:        s.newID(),
		Role:      role,
		Content:   content,
		Timestamp: s.now().UnixMilli(),
	}
}

func (s *Session) persistGraph(ctx context.Context, st merge.State) error {
	if err := s.persist(ctx, store.KeyNodes, st.Nodes); err != nil {
		return err
	}
	return s.persist(ctx, store.KeyEdges, st.Edges)
}

func (s *Session) persist(ctx context.Context, key string, v any) error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPersist, key, err)
	}
	return nil
}
