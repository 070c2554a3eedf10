// Package metrics annotates every node of a graph with structural measures:
// degree, betweenness, closeness, eigenvector and PageRank centrality, the
// local clustering coefficient and a community label.
//
// Computation is a pure function of the graph: no state survives between
// calls and a fixed input always yields the same output.
package metrics

import (
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/kgraph/internal/core/community"
	"github.com/agenthands/kgraph/internal/core/graph"
	"github.com/agenthands/kgraph/internal/core/model"
)

// Options holds the numeric knobs of the iterative metrics.
type Options struct {
	EigenTolerance        float64
	EigenMaxIterations    int
	PageRankAlpha         float64
	PageRankTolerance     float64
	PageRankMaxIterations int
	// Parallel runs the independent metric passes concurrently. Each pass
	// reads the same immutable adjacency and writes its own slice.
	Parallel bool
}

func DefaultOptions() Options {
	return Options{
		EigenTolerance:        1e-6,
		EigenMaxIterations:    1000,
		PageRankAlpha:         0.85,
		PageRankTolerance:     1e-6,
		PageRankMaxIterations: 100,
		Parallel:              true,
	}
}

// Result is the annotated node set plus convergence diagnostics.
type Result struct {
	Nodes []model.Node

	EigenvectorIterations int
	EigenvectorConverged  bool
	PageRankIterations    int
	PageRankConverged     bool
}

type Engine struct {
	opts     Options
	detector community.Detector
	log      *zap.Logger
}

// NewEngine builds an engine. A nil detector selects Louvain.
func NewEngine(opts Options, detector community.Detector, logger *zap.Logger) *Engine {
	if detector == nil {
		detector = community.NewLouvain()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{opts: opts, detector: detector, log: logger.Named("metrics")}
}

// Compute builds a graph from nodes and edges and annotates it. Dangling,
// duplicate and self-loop edges are ignored, as are repeated node ids.
func (e *Engine) Compute(nodes []model.Node, edges []model.Edge) []model.Node {
	return e.Analyze(graph.Build(nodes, edges)).Nodes
}

// Analyze annotates every node of g. It never fails: empty, single-node and
// disconnected graphs degrade to zero or neutral values.
func (e *Engine) Analyze(g *graph.Graph) Result {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return Result{Nodes: nodes, EigenvectorConverged: true, PageRankConverged: true}
	}

	adj := g.Adjacency()
	var (
		degree, between, reach, eigen, rank, clust []float64
		labels                                     []int
		res                                        Result
	)

	if g.Size() == 0 {
		// No edges: only PageRank (uniform teleport) and the community labels
		// are non-zero.
		degree = make([]float64, n)
		between, reach, eigen, clust = degree, degree, degree, degree
		rank = make([]float64, n)
		for i := range rank {
			rank[i] = 1 / float64(n)
		}
		labels = e.detector.Detect(adj)
		res.EigenvectorConverged, res.PageRankConverged = true, true
	} else {
		passes := []func(){
			func() { degree = degreeCentrality(adj) },
			func() { between = betweenness(adj) },
			func() { reach = closeness(adj) },
			func() {
				eigen, res.EigenvectorIterations, res.EigenvectorConverged =
					eigenvector(adj, e.opts.EigenTolerance, e.opts.EigenMaxIterations)
			},
			func() {
				rank, res.PageRankIterations, res.PageRankConverged =
					pagerank(adj, e.opts.PageRankAlpha, e.opts.PageRankTolerance, e.opts.PageRankMaxIterations)
			},
			func() { clust = clustering(adj) },
			func() { labels = e.detector.Detect(adj) },
		}
		e.run(passes)
	}

	for i := range nodes {
		nodes[i].Metrics = model.Metrics{
			DegreeCentrality: round6(degree[i]),
			Betweenness:      round6(between[i]),
			Closeness:        round6(reach[i]),
			Eigenvector:      round6(eigen[i]),
			PageRank:         round6(rank[i]),
			Clustering:       round6(clust[i]),
			Community:        labels[i],
		}
	}
	res.Nodes = nodes

	if !res.EigenvectorConverged {
		e.log.Warn("Eigenvector centrality did not converge; using last iterate",
			zap.Int("iterations", res.EigenvectorIterations))
	}
	if !res.PageRankConverged {
		e.log.Warn("PageRank did not converge; using last iterate",
			zap.Int("iterations", res.PageRankIterations))
	}
	e.log.Debug("Metrics computed",
		zap.Int("nodes", n),
		zap.Int("edges", g.Size()),
		zap.Int("eigenvector_iterations", res.EigenvectorIterations),
		zap.Int("pagerank_iterations", res.PageRankIterations))
	return res
}

func (e *Engine) run(passes []func()) {
	if !e.opts.Parallel {
		for _, p := range passes {
			p()
		}
		return
	}
	var g errgroup.Group
	for _, p := range passes {
		g.Go(func() error {
			p()
			return nil
		})
	}
	_ = g.Wait()
}

func round6(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Round(x*1e6) / 1e6
}
