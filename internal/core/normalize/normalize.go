// Package normalize reduces edge endpoints to bare node identities.
//
// The rendering layer is free to replace an endpoint string with the full node
// payload it points at, so every edge entering the core passes through here
// before any set-membership or insertion logic runs.
package normalize

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/core/model"
)

// ErrMalformedEndpoint is returned when an endpoint carries no usable identity.
var ErrMalformedEndpoint = errors.New("malformed edge endpoint")

type identifier interface {
	NodeID() string
}

// EndpointID extracts the node identity from a single endpoint value.
func EndpointID(v any) (string, error) {
	switch ep := v.(type) {
	case string:
		return ep, nil
	case *model.Node:
		if ep == nil {
			return "", fmt.Errorf("%w: nil node", ErrMalformedEndpoint)
		}
		return ep.ID, nil
	case identifier:
		return ep.NodeID(), nil
	case map[string]any:
		id, ok := ep["id"].(string)
		if !ok {
			return "", fmt.Errorf("%w: object without string id", ErrMalformedEndpoint)
		}
		return id, nil
	case nil:
		return "", fmt.Errorf("%w: missing", ErrMalformedEndpoint)
	default:
		return "", fmt.Errorf("%w: unsupported %T", ErrMalformedEndpoint, v)
	}
}

// Edge converts a raw edge into its canonical form. Empty identities are
// malformed as well.
func Edge(raw model.RawEdge) (model.Edge, error) {
	src, err := EndpointID(raw.Source)
	if err != nil {
		return model.Edge{}, fmt.Errorf("source: %w", err)
	}
	dst, err := EndpointID(raw.Target)
	if err != nil {
		return model.Edge{}, fmt.Errorf("target: %w", err)
	}
	if src == "" || dst == "" {
		return model.Edge{}, fmt.Errorf("%w: empty id", ErrMalformedEndpoint)
	}
	return model.Edge{Source: src, Target: dst, Label: raw.Label}, nil
}

// Normalizer canonicalizes batches of raw edges, dropping malformed ones and
// collapsing duplicates of the same unordered pair.
type Normalizer struct {
	log *zap.Logger
}

func New(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{log: logger.Named("normalize")}
}

// Result carries the canonical edges and how many inputs were rejected.
type Result struct {
	Edges      []model.Edge
	Malformed  int
	Duplicates int
}

// Edges normalizes raw in order. The first occurrence of a pair wins, so its
// label is the one kept.
func (n *Normalizer) Edges(raw []model.RawEdge) Result {
	var res Result
	seen := make(map[PairKey]struct{}, len(raw))
	for i, r := range raw {
		e, err := Edge(r)
		if err != nil {
			res.Malformed++
			n.log.Warn("Dropping malformed edge", zap.Int("index", i), zap.Error(err))
			continue
		}
		key := Pair(e.Source, e.Target)
		if _, dup := seen[key]; dup {
			res.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		res.Edges = append(res.Edges, e)
	}
	return res
}

// PairKey identifies an unordered pair of node identities.
type PairKey struct {
	A, B string
}

// Pair returns the key for {a, b}; Pair(a, b) == Pair(b, a).
func Pair(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}
