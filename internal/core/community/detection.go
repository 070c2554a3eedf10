package community

import (
	"fmt"
	"strings"
)

// Detector partitions the nodes of an undirected graph into communities.
// adj[i] lists the neighbor indices of node i; the result holds one label per
// node. Labels are contiguous from 0, numbered by first appearance in node
// order, and carry no meaning across separate runs.
type Detector interface {
	Detect(adj [][]int) []int
}

const (
	AlgorithmLouvain          = "louvain"
	AlgorithmLabelPropagation = "label_propagation"
	AlgorithmComponents       = "components"
)

// NewDetector returns the detector registered under name. An empty name
// selects Louvain.
func NewDetector(name string, resolution float64, maxPasses int) (Detector, error) {
	switch strings.ToLower(name) {
	case "", AlgorithmLouvain:
		l := NewLouvain()
		if resolution > 0 {
			l.Resolution = resolution
		}
		if maxPasses > 0 {
			l.MaxPasses = maxPasses
		}
		return l, nil
	case AlgorithmLabelPropagation:
		return NewLabelPropagationDetector(), nil
	case AlgorithmComponents:
		return &ComponentDetector{}, nil
	default:
		return nil, fmt.Errorf("unsupported community algorithm: %s", name)
	}
}

// ComponentDetector labels every connected component as one community.
type ComponentDetector struct{}

func (d *ComponentDetector) Detect(adj [][]int) []int {
	labels := make([]int, len(adj))
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	stack := make([]int, 0, len(adj))
	for start := range adj {
		if labels[start] >= 0 {
			continue
		}
		labels[start] = next
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if labels[v] < 0 {
					labels[v] = next
					stack = append(stack, v)
				}
			}
		}
		next++
	}
	return labels
}

// relabel renumbers arbitrary labels to 0..k-1 by first appearance and
// returns k.
func relabel(labels []int) ([]int, int) {
	ids := make(map[int]int)
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		out[i] = id
	}
	return out, len(ids)
}

// Modularity scores a partition of an unweighted undirected graph.
// It returns 0 for a graph without edges.
func Modularity(adj [][]int, labels []int) float64 {
	var m2 float64
	for _, nbrs := range adj {
		m2 += float64(len(nbrs))
	}
	if m2 == 0 {
		return 0
	}

	internal := make(map[int]float64)
	degree := make(map[int]float64)
	for u, nbrs := range adj {
		degree[labels[u]] += float64(len(nbrs))
		for _, v := range nbrs {
			if labels[u] == labels[v] {
				internal[labels[u]]++
			}
		}
	}

	var q float64
	for c, d := range degree {
		q += internal[c]/m2 - (d/m2)*(d/m2)
	}
	return q
}
