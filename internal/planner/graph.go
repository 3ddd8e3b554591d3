package planner

// Edge runs from a prerequisite candidate to its dependent course.
type Edge struct {
	From string
	To   string
}

// Graph is the per-verification dependency graph. Nodes keep discovery order.
type Graph struct {
	Nodes []string
	Edges []Edge

	index map[string]int
}

// Has reports whether id is a graph node.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

func (g *Graph) addNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, id)
}

// BuildGraph assembles the dependency graph of a schedule. Nodes are the
// scheduled courses followed by every resolved member that is a tracked
// outstanding requirement. Each (member, dependent) pair of a non-orphan
// group yields one edge, whether or not the member is a node.
func BuildGraph(schedule []ScheduleItem, outstanding map[string]OutstandingRequirement, groups []*Group) *Graph {
	g := &Graph{index: make(map[string]int)}
	for _, item := range schedule {
		g.addNode(item.Course.ID)
	}

	seen := make(map[Edge]struct{})
	for _, grp := range groups {
		for _, m := range grp.Members {
			for _, id := range m.Expansion {
				if _, tracked := outstanding[id]; tracked {
					g.addNode(id)
				}
				if grp.Orphan() {
					continue
				}
				e := Edge{From: id, To: grp.Dependent}
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				g.Edges = append(g.Edges, e)
			}
		}
	}
	return g
}
