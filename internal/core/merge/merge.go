// Package merge folds proposed deltas into the current graph state and
// re-annotates the result.
package merge

import (
	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/core/graph"
	"github.com/agenthands/kgraph/internal/core/metrics"
	"github.com/agenthands/kgraph/internal/core/model"
	"github.com/agenthands/kgraph/internal/core/normalize"
)

// State is the full node and edge set of a session at one point in time.
type State struct {
	Nodes []model.Node `json:"nodes"`
	Edges []model.Edge `json:"edges"`
}

// Report counts what a merge did with each proposed item.
type Report struct {
	NodesAdded     int `json:"nodesAdded"`
	NodesExisting  int `json:"nodesExisting"`
	NodesRejected  int `json:"nodesRejected"`
	EdgesAdded     int `json:"edgesAdded"`
	EdgesExisting  int `json:"edgesExisting"`
	EdgesDangling  int `json:"edgesDangling"`
	EdgesMalformed int `json:"edgesMalformed"`
	EdgesSelfLoop  int `json:"edgesSelfLoop"`
}

// Changed reports whether the merge added anything.
func (r Report) Changed() bool {
	return r.NodesAdded > 0 || r.EdgesAdded > 0
}

type Coordinator struct {
	engine     *metrics.Engine
	normalizer *normalize.Normalizer
	log        *zap.Logger
}

func NewCoordinator(engine *metrics.Engine, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		engine:     engine,
		normalizer: normalize.New(logger),
		log:        logger.Named("merge"),
	}
}

// Merge unions delta into current and returns the new state with freshly
// computed metrics. current is not modified, so a caller can discard the
// result without any partial effect.
//
// Proposed nodes never overwrite existing ones. Proposed edges are normalized
// first and kept only when both endpoints exist and the pair is not yet
// connected. Stored edges are carried over untouched.
func (c *Coordinator) Merge(current State, delta model.Delta) (State, Report) {
	var rep Report

	g := graph.New()
	for _, n := range current.Nodes {
		g.AddNode(n)
	}
	for _, e := range current.Edges {
		g.AddEdge(e)
	}

	if delta.SkippedNodes > 0 {
		rep.NodesRejected += delta.SkippedNodes
		c.log.Warn("Rejecting undecodable proposed nodes", zap.Int("count", delta.SkippedNodes))
	}
	for _, d := range delta.Nodes {
		if d.ID == "" {
			rep.NodesRejected++
			c.log.Warn("Rejecting proposed node without id", zap.String("label", d.Label))
			continue
		}
		if g.Has(d.ID) {
			rep.NodesExisting++
			continue
		}
		n, err := d.ToNode()
		if err != nil {
			rep.NodesRejected++
			c.log.Warn("Rejecting proposed node", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		g.AddNode(n)
		rep.NodesAdded++
	}

	norm := c.normalizer.Edges(delta.Edges)
	rep.EdgesMalformed = norm.Malformed + delta.SkippedEdges
	if delta.SkippedEdges > 0 {
		c.log.Warn("Dropping undecodable proposed edges", zap.Int("count", delta.SkippedEdges))
	}
	rep.EdgesExisting = norm.Duplicates

	edges := make([]model.Edge, len(current.Edges), len(current.Edges)+len(norm.Edges))
	copy(edges, current.Edges)
	for _, e := range norm.Edges {
		switch outcome := g.AddEdge(e); outcome {
		case graph.EdgeAdded:
			edges = append(edges, e)
			rep.EdgesAdded++
		case graph.EdgeDuplicate:
			rep.EdgesExisting++
		case graph.EdgeDangling:
			rep.EdgesDangling++
			c.log.Warn("Dropping dangling edge", zap.String("source", e.Source), zap.String("target", e.Target))
		case graph.EdgeSelfLoop:
			rep.EdgesSelfLoop++
			c.log.Warn("Dropping self-loop", zap.String("node", e.Source))
		}
	}

	res := c.engine.Analyze(g)
	c.log.Info("Merged delta",
		zap.Int("nodes_added", rep.NodesAdded),
		zap.Int("edges_added", rep.EdgesAdded),
		zap.Int("edges_dropped", rep.EdgesDangling+rep.EdgesMalformed+rep.EdgesSelfLoop),
		zap.Int("total_nodes", len(res.Nodes)),
		zap.Int("total_edges", len(edges)))

	return State{Nodes: res.Nodes, Edges: edges}, rep
}

// Recompute re-annotates a state without changing its membership.
func (c *Coordinator) Recompute(s State) State {
	g := graph.Build(s.Nodes, s.Edges)
	edges := make([]model.Edge, len(s.Edges))
	copy(edges, s.Edges)
	return State{Nodes: c.engine.Analyze(g).Nodes, Edges: edges}
}
