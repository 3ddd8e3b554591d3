package planner

// Sequence is the outcome of ordering a Graph.
type Sequence struct {
	// Order holds every node that reached zero in-degree, in dequeue order.
	Order []string
	// Unordered holds nodes left behind by a cycle, in node order.
	Unordered []string
	HasCycle  bool
}

// Sequence orders the graph with Kahn's algorithm. Only edges between two
// graph nodes count towards in-degree. The queue is FIFO and seeded in node
// order, so ties follow discovery order.
func (g *Graph) Sequence() Sequence {
	indeg := make([]int, len(g.Nodes))
	outgoing := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		from, okFrom := g.index[e.From]
		to, okTo := g.index[e.To]
		if !okFrom || !okTo {
			continue
		}
		outgoing[from] = append(outgoing[from], to)
		indeg[to]++
	}

	queue := make([]int, 0, len(g.Nodes))
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]string, 0, len(g.Nodes))
	done := make([]bool, len(g.Nodes))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, g.Nodes[u])
		done[u] = true
		for _, v := range outgoing[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	seq := Sequence{Order: order, HasCycle: len(order) < len(g.Nodes)}
	if seq.HasCycle {
		for i, id := range g.Nodes {
			if !done[i] {
				seq.Unordered = append(seq.Unordered, id)
			}
		}
	}
	return seq
}

// SuggestedOrder filters the order down to outstanding requirements.
func (s Sequence) SuggestedOrder(outstanding map[string]OutstandingRequirement) []CourseRef {
	out := make([]CourseRef, 0, len(s.Order))
	for _, id := range s.Order {
		if req, ok := outstanding[id]; ok {
			out = append(out, req.Course)
		}
	}
	return out
}
