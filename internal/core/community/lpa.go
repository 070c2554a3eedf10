package community

// LabelPropagationDetector implements community detection using the Label
// Propagation Algorithm (LPA).
type LabelPropagationDetector struct {
	MaxIterations int
}

func NewLabelPropagationDetector() *LabelPropagationDetector {
	return &LabelPropagationDetector{
		MaxIterations: 20,
	}
}

func (d *LabelPropagationDetector) Detect(adj [][]int) []int {
	// Each node starts with its own label.
	labels := make([]int, len(adj))
	for i := range labels {
		labels[i] = i
	}

	counts := make(map[int]int)
	for iter := 0; iter < d.MaxIterations; iter++ {
		changeCount := 0

		for u, neighbors := range adj {
			if len(neighbors) == 0 {
				continue
			}

			clear(counts)
			maxCount := 0
			for _, v := range neighbors {
				counts[labels[v]]++
				if counts[labels[v]] > maxCount {
					maxCount = counts[labels[v]]
				}
			}

			// Keep the current label when it is among the most frequent,
			// otherwise take the largest winning label for stability.
			if counts[labels[u]] == maxCount {
				continue
			}
			best := -1
			for label, count := range counts {
				if count == maxCount && label > best {
					best = label
				}
			}

			labels[u] = best
			changeCount++
		}

		if changeCount == 0 {
			break
		}
	}

	out, _ := relabel(labels)
	return out
}
