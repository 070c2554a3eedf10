// Package graph holds the authoritative undirected node/edge set and answers
// the adjacency queries the metrics engine needs.
package graph

import (
	"sort"

	"github.com/agenthands/kgraph/internal/core/model"
	"github.com/agenthands/kgraph/internal/core/normalize"
)

// EdgeOutcome tells what AddEdge did with an edge. None of the skip outcomes
// is an error: partial deltas are expected.
type EdgeOutcome int

const (
	EdgeAdded EdgeOutcome = iota
	EdgeDuplicate
	EdgeDangling
	EdgeSelfLoop
)

func (o EdgeOutcome) String() string {
	switch o {
	case EdgeAdded:
		return "added"
	case EdgeDuplicate:
		return "duplicate"
	case EdgeDangling:
		return "dangling"
	case EdgeSelfLoop:
		return "self-loop"
	}
	return "unknown"
}

// Graph is a simple undirected graph keyed by node identity. Nodes keep their
// insertion order, which makes every traversal over it deterministic.
type Graph struct {
	nodes []model.Node
	index map[string]int
	adj   []map[int]struct{}
	edges []model.Edge
	pairs map[normalize.PairKey]struct{}
}

func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		pairs: make(map[normalize.PairKey]struct{}),
	}
}

// Build creates a graph from canonical nodes and edges, applying the same
// skip rules as AddNode and AddEdge.
func Build(nodes []model.Node, edges []model.Edge) *Graph {
	g := New()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

// AddNode inserts n unless a node with the same id is already present.
// Reports whether the node was inserted.
func (g *Graph) AddNode(n model.Node) bool {
	if n.ID == "" {
		return false
	}
	if _, ok := g.index[n.ID]; ok {
		return false
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, make(map[int]struct{}))
	return true
}

// AddEdge inserts e when both endpoints exist and the unordered pair is not
// connected yet.
func (g *Graph) AddEdge(e model.Edge) EdgeOutcome {
	if e.Source == e.Target {
		return EdgeSelfLoop
	}
	u, ok := g.index[e.Source]
	if !ok {
		return EdgeDangling
	}
	v, ok := g.index[e.Target]
	if !ok {
		return EdgeDangling
	}
	key := normalize.Pair(e.Source, e.Target)
	if _, dup := g.pairs[key]; dup {
		return EdgeDuplicate
	}
	g.pairs[key] = struct{}{}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges = append(g.edges, e)
	return EdgeAdded
}

func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge is symmetric: HasEdge(a, b) == HasEdge(b, a).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.pairs[normalize.Pair(a, b)]
	return ok
}

// Neighbors returns the identities adjacent to id. Order is unspecified.
func (g *Graph) Neighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.adj[i]))
	for j := range g.adj[i] {
		out = append(out, g.nodes[j].ID)
	}
	return out
}

// Len is the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Size is the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph) Nodes() []model.Node {
	out := make([]model.Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the accepted edges in insertion order.
func (g *Graph) Edges() []model.Edge {
	out := make([]model.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Adjacency returns, for every node index, its neighbor indices in ascending
// order. Index i corresponds to Nodes()[i].
func (g *Graph) Adjacency() [][]int {
	out := make([][]int, len(g.adj))
	for i, m := range g.adj {
		nbrs := make([]int, 0, len(m))
		for j := range m {
			nbrs = append(nbrs, j)
		}
		sort.Ints(nbrs)
		out[i] = nbrs
	}
	return out
}
