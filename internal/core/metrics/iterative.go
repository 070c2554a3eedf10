package metrics

import "math"

// eigenvector runs power iteration on A+I, which shares A's principal
// eigenvector but also converges on bipartite graphs. Each step uses only the
// previous step's full vector. The vector is L2-normalized; iteration stops
// once the L2 change falls below tol or after maxIter steps, in which case the
// last iterate is returned with converged=false.
//
// Isolated nodes start (and stay) at 0.
func eigenvector(adj [][]int, tol float64, maxIter int) (x []float64, iterations int, converged bool) {
	n := len(adj)
	x = make([]float64, n)
	for i, nbrs := range adj {
		if len(nbrs) > 0 {
			x[i] = 1
		}
	}
	if normalizeL2(x) == 0 {
		return x, 0, true
	}

	next := make([]float64, n)
	for iterations = 1; iterations <= maxIter; iterations++ {
		for i, nbrs := range adj {
			sum := x[i]
			for _, j := range nbrs {
				sum += x[j]
			}
			next[i] = sum
		}
		normalizeL2(next)

		var change float64
		for i := range x {
			d := next[i] - x[i]
			change += d * d
		}
		x, next = next, x
		if math.Sqrt(change) < tol {
			return x, iterations, true
		}
	}
	return x, maxIter, false
}

func normalizeL2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return 0
	}
	for i := range v {
		v[i] /= norm
	}
	return norm
}

// pagerank iterates the random-surfer model with damping alpha and a uniform
// teleport vector. Every undirected edge is followed in both directions and
// the mass of isolated nodes is spread uniformly. Converged when the L1
// change drops below n*tol.
func pagerank(adj [][]int, alpha, tol float64, maxIter int) (x []float64, iterations int, converged bool) {
	n := len(adj)
	x = make([]float64, n)
	if n == 0 {
		return x, 0, true
	}
	for i := range x {
		x[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	for iterations = 1; iterations <= maxIter; iterations++ {
		var dangling float64
		for i, nbrs := range adj {
			if len(nbrs) == 0 {
				dangling += x[i]
			}
		}
		base := (1-alpha)/float64(n) + alpha*dangling/float64(n)

		for i, nbrs := range adj {
			var sum float64
			for _, j := range nbrs {
				sum += x[j] / float64(len(adj[j]))
			}
			next[i] = base + alpha*sum
		}

		var change float64
		for i := range x {
			change += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if change < float64(n)*tol {
			return x, iterations, true
		}
	}
	return x, maxIter, false
}
