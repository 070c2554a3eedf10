package community

// adjacency builds sorted neighbor lists for n nodes from an edge list.
func adjacency(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

// Two triangles {0,1,2} and {3,4,5} joined by the bridge 2-3.
var bridgedTriangles = [][2]int{
	{0, 1}, {1, 2}, {2, 0},
	{2, 3},
	{3, 4}, {4, 5}, {5, 3},
}

func clique(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return edges
}
