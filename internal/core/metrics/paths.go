package metrics

// betweenness computes Brandes betweenness centrality for an unweighted
// undirected graph, normalized by the (n-1)(n-2) ordered pair count. Credit
// for a pair with several shortest paths is split by path count.
func betweenness(adj [][]int) []float64 {
	n := len(adj)
	bc := make([]float64, n)
	if n <= 2 {
		return bc
	}

	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	pred := make([][]int, n)
	stack := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for i := range dist {
			dist[i] = -1
			sigma[i] = 0
			delta[i] = 0
			pred[i] = pred[i][:0]
		}
		stack = stack[:0]
		queue = append(queue[:0], s)
		dist[s] = 0
		sigma[s] = 1

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			for _, w := range adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				bc[w] += delta[w]
			}
		}
	}

	// Every unordered pair was visited from both ends.
	scale := 1 / float64((n-1)*(n-2))
	for i := range bc {
		bc[i] *= scale
	}
	return bc
}

// closeness computes Wasserman-Faust closeness: (r/sum) * (r/(n-1)) where r
// is the number of nodes reachable from v and sum their total distance.
// Nodes that reach nobody get 0.
func closeness(adj [][]int) []float64 {
	n := len(adj)
	out := make([]float64, n)
	if n <= 1 {
		return out
	}

	dist := make([]int, n)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		queue = append(queue[:0], s)
		total := 0
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, w := range adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					total += dist[w]
					queue = append(queue, w)
				}
			}
		}
		reached := len(queue) - 1
		if reached == 0 || total == 0 {
			continue
		}
		r := float64(reached)
		out[s] = (r / float64(total)) * (r / float64(n-1))
	}
	return out
}
