package core

// Components groups nodes into connected regions. Edges are followed in
// their stored direction; BuildGraph stores every edge both ways, so for
// mesh graphs these are the undirected components. Nodes that no triangle
// references form singleton components.
// Each component lists its nodes in ascending index order;
// components are ordered by their lowest index.
//
// Time:   O(V + E).
// Memory: O(V) for labels and output.
func (g *Graph) Components() [][]NodeIndex {
	labels := g.ComponentLabels()
	var comps [][]NodeIndex
	for n, c := range labels {
		if c == len(comps) {
			comps = append(comps, nil)
		}
		comps[c] = append(comps[c], NodeIndex(n))
	}

	return comps
}

// ComponentLabels returns, per node, the index of its component in
// Components order.
func (g *Graph) ComponentLabels() []int {
	if g == nil {
		return nil
	}
	labels := make([]int, len(g.Nodes))
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	queue := make([]NodeIndex, 0, len(g.Nodes))
	for s := range g.Nodes {
		if labels[s] >= 0 {
			continue
		}
		labels[s] = next
		queue = append(queue[:0], NodeIndex(s))
		for qi := 0; qi < len(queue); qi++ {
			for _, e := range g.Nodes[queue[qi]].Neighbors {
				if labels[e.To] < 0 {
					labels[e.To] = next
					queue = append(queue, e.To)
				}
			}
		}
		next++
	}

	return labels
}

// Connected reports whether b is reachable from a. Out-of-range nodes are never connected.
func (g *Graph) Connected(a, b NodeIndex) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	seen := make([]bool, len(g.Nodes))
	seen[a] = true
	queue := []NodeIndex{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, e := range g.Nodes[u].Neighbors {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return false
}
