package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func graphOf(nodes []string, edges ...Edge) *Graph {
	g := &Graph{index: make(map[string]int)}
	for _, n := range nodes {
		g.addNode(n)
	}
	g.Edges = edges
	return g
}

func TestSequence_Chain(t *testing.T) {
	g := graphOf([]string{"C", "B", "A"}, Edge{From: "A", To: "B"}, Edge{From: "B", To: "C"})

	seq := g.Sequence()
	assert.False(t, seq.HasCycle)
	assert.Equal(t, []string{"A", "B", "C"}, seq.Order)
	assert.Empty(t, seq.Unordered)
}

func TestSequence_TiesFollowInsertionOrder(t *testing.T) {
	g := graphOf([]string{"Z", "M", "A"})

	seq := g.Sequence()
	assert.Equal(t, []string{"Z", "M", "A"}, seq.Order)
}

func TestSequence_IgnoresEdgesToNonNodes(t *testing.T) {
	g := graphOf([]string{"A", "B"}, Edge{From: "X", To: "A"}, Edge{From: "A", To: "B"})

	seq := g.Sequence()
	assert.False(t, seq.HasCycle)
	assert.Equal(t, []string{"A", "B"}, seq.Order)
}

func TestSequence_Cycle(t *testing.T) {
	g := graphOf([]string{"R", "A", "B", "C"},
		Edge{From: "R", To: "A"},
		Edge{From: "A", To: "B"},
		Edge{From: "B", To: "A"},
		Edge{From: "B", To: "C"},
	)

	seq := g.Sequence()
	assert.True(t, seq.HasCycle)
	assert.Equal(t, []string{"R"}, seq.Order)
	assert.Equal(t, []string{"A", "B", "C"}, seq.Unordered)
}

func TestSequence_SelfLoopIsCycle(t *testing.T) {
	g := graphOf([]string{"A"}, Edge{From: "A", To: "A"})

	seq := g.Sequence()
	assert.True(t, seq.HasCycle)
	assert.Empty(t, seq.Order)
}

func TestSuggestedOrder_FiltersOutstanding(t *testing.T) {
	g := graphOf([]string{"X", "P1", "P2"}, Edge{From: "P1", To: "X"}, Edge{From: "P2", To: "X"})
	outstanding := map[string]OutstandingRequirement{
		"P2": outstandingReq("P2", "P 2", ""),
		"X":  outstandingReq("X", "X 1", ""),
	}

	got := g.Sequence().SuggestedOrder(outstanding)
	assert.Equal(t, []string{"P2", "X"}, ids(got))
	assert.Equal(t, "P 2", got[0].Code)
}

func TestBuildGraph(t *testing.T) {
	schedule := []ScheduleItem{sched("X", "X 1", 1, TermWinter), sched("Y", "Y 1", 2, TermSpring)}
	outstanding := map[string]OutstandingRequirement{"P1": outstandingReq("P1", "", "")}
	groups := []*Group{
		{ID: 1, Dependent: "X", MinCourses: 1, Members: []Member{
			{Token: ParseToken("P1"), Expansion: []string{"P1"}},
			{Token: ParseToken("P2"), Expansion: []string{"P2"}},
		}},
		{ID: 2, Dependent: "Y", MinCourses: 1, Members: []Member{
			{Token: ParseToken("X"), Expansion: []string{"X"}},
			{Token: ParseToken("P1"), Expansion: []string{"P1"}},
		}},
		{ID: 3, MinCourses: 0, Members: []Member{
			{Token: ParseToken("P1"), Expansion: []string{"P1"}},
		}},
	}

	g := BuildGraph(schedule, outstanding, groups)
	assert.Equal(t, []string{"X", "Y", "P1"}, g.Nodes, "untracked members stay out of the graph")
	assert.Equal(t, []Edge{
		{From: "P1", To: "X"},
		{From: "P2", To: "X"},
		{From: "X", To: "Y"},
		{From: "P1", To: "Y"},
	}, g.Edges, "orphan groups add no edges")
}
