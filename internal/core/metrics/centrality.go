package metrics

// degreeCentrality returns deg(v)/(n-1); every value is 0 when n <= 1.
func degreeCentrality(adj [][]int) []float64 {
	n := len(adj)
	out := make([]float64, n)
	if n <= 1 {
		return out
	}
	for v, nbrs := range adj {
		out[v] = float64(len(nbrs)) / float64(n-1)
	}
	return out
}

// clustering returns the local clustering coefficient of every node: the
// fraction of neighbor pairs that are themselves adjacent. Nodes with fewer
// than two neighbors get 0.
func clustering(adj [][]int) []float64 {
	n := len(adj)
	out := make([]float64, n)
	marked := make([]bool, n)
	for v, nbrs := range adj {
		k := len(nbrs)
		if k < 2 {
			continue
		}
		for _, u := range nbrs {
			marked[u] = true
		}
		links := 0
		for _, u := range nbrs {
			for _, w := range adj[u] {
				if w > u && marked[w] {
					links++
				}
			}
		}
		for _, u := range nbrs {
			marked[u] = false
		}
		out[v] = 2 * float64(links) / float64(k*(k-1))
	}
	return out
}
