package community

import "sort"

// Louvain implements modularity-greedy community detection. Each level moves
// single nodes between neighboring communities while that raises modularity,
// then collapses every community into one node and repeats on the smaller
// graph until no node moves.
//
// Nodes are visited in index order and candidate communities in ascending
// label order, so a fixed input always yields the same partition.
type Louvain struct {
	Resolution float64
	MaxPasses  int // local-moving sweeps per level
	MaxLevels  int
}

func NewLouvain() *Louvain {
	return &Louvain{
		Resolution: 1.0,
		MaxPasses:  100,
		MaxLevels:  32,
	}
}

// minGain keeps floating point noise from triggering endless swaps.
const minGain = 1e-12

type weightedEdge struct {
	u, v int // u <= v; u == v is a self-loop
	w    float64
}

type link struct {
	to int
	w  float64
}

func (l *Louvain) Detect(adj [][]int) []int {
	n := len(adj)
	membership := make([]int, n)
	for i := range membership {
		membership[i] = i
	}

	var edges []weightedEdge
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if u < v {
				edges = append(edges, weightedEdge{u: u, v: v, w: 1})
			}
		}
	}
	if len(edges) == 0 {
		out, _ := relabel(membership)
		return out
	}

	size := n
	for level := 0; level < l.MaxLevels; level++ {
		comm, moved := l.moveNodes(size, edges)
		if !moved {
			break
		}
		comm, k := relabel(comm)
		for i, c := range membership {
			membership[i] = comm[c]
		}
		edges = aggregate(edges, comm)
		size = k
	}

	out, _ := relabel(membership)
	return out
}

// moveNodes runs the local-moving phase on a weighted graph of n nodes and
// returns the community of every node and whether any node changed community.
func (l *Louvain) moveNodes(n int, edges []weightedEdge) ([]int, bool) {
	links := make([][]link, n)
	degree := make([]float64, n)
	var m2 float64
	for _, e := range edges {
		if e.u == e.v {
			degree[e.u] += 2 * e.w
		} else {
			links[e.u] = append(links[e.u], link{to: e.v, w: e.w})
			links[e.v] = append(links[e.v], link{to: e.u, w: e.w})
			degree[e.u] += e.w
			degree[e.v] += e.w
		}
		m2 += 2 * e.w
	}

	comm := make([]int, n)
	total := make([]float64, n)
	for i := range comm {
		comm[i] = i
		total[i] = degree[i]
	}

	weights := make(map[int]float64)
	candidates := make([]int, 0)
	moved := false
	for pass := 0; pass < l.MaxPasses; pass++ {
		improved := false
		for i := 0; i < n; i++ {
			clear(weights)
			candidates = candidates[:0]
			for _, lk := range links[i] {
				c := comm[lk.to]
				if _, ok := weights[c]; !ok {
					candidates = append(candidates, c)
				}
				weights[c] += lk.w
			}
			sort.Ints(candidates)

			current := comm[i]
			total[current] -= degree[i]

			best := current
			bestGain := weights[current] - l.Resolution*total[current]*degree[i]/m2
			for _, c := range candidates {
				gain := weights[c] - l.Resolution*total[c]*degree[i]/m2
				if gain > bestGain+minGain {
					best, bestGain = c, gain
				}
			}

			total[best] += degree[i]
			comm[i] = best
			if best != current {
				improved = true
				moved = true
			}
		}
		if !improved {
			break
		}
	}
	return comm, moved
}

// aggregate collapses nodes into their communities. Internal edges become
// self-loops, parallel edges are summed.
func aggregate(edges []weightedEdge, comm []int) []weightedEdge {
	type pair struct{ u, v int }
	sums := make(map[pair]float64)
	for _, e := range edges {
		cu, cv := comm[e.u], comm[e.v]
		if cv < cu {
			cu, cv = cv, cu
		}
		sums[pair{cu, cv}] += e.w
	}

	out := make([]weightedEdge, 0, len(sums))
	for p, w := range sums {
		out = append(out, weightedEdge{u: p.u, v: p.v, w: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].u != out[j].u {
			return out[i].u < out[j].u
		}
		return out[i].v < out[j].v
	})
	return out
}
