package planner

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options tunes the engine.
type Options struct {
	// MaxChainDepth bounds the transitive prerequisite walk. Zero means unbounded.
	MaxChainDepth int
	// LookupConcurrency bounds parallel wildcard expansions. Zero or less means 4.
	LookupConcurrency int
}

// Snapshot is everything a verification reads, fully loaded.
type Snapshot struct {
	Request
	// Groups holds groups whose dependent is scheduled, plus orphans.
	Groups []*Group
	// Ancestors holds groups of unscheduled prerequisites, loaded transitively.
	Ancestors []*Group
	// Courses holds display data of courses met while loading.
	Courses map[string]CourseRef
}

func (s *Snapshot) outstandingByID() map[string]OutstandingRequirement {
	out := make(map[string]OutstandingRequirement, len(s.OutstandingRequirements))
	for _, req := range s.OutstandingRequirements {
		out[req.Course.ID] = req
	}
	return out
}

// Engine verifies schedules against stored prerequisite groups.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	groups  GroupStore
	catalog Catalog
	opts    Options
	logger  zerolog.Logger
}

// NewEngine creates an Engine.
func NewEngine(groups GroupStore, catalog Catalog, opts Options, logger zerolog.Logger) *Engine {
	if opts.LookupConcurrency <= 0 {
		opts.LookupConcurrency = 4
	}
	return &Engine{
		groups:  groups,
		catalog: catalog,
		opts:    opts,
		logger:  logger.With().Str("component", "planner").Logger(),
	}
}

// Validate rejects requests the engine cannot evaluate.
func Validate(req Request) error {
	for i, item := range req.Schedule {
		if strings.TrimSpace(item.Course.ID) == "" {
			return invalidf("schedule[%d]: course id is required", i)
		}
		if item.TermIndex < 0 {
			return invalidf("schedule[%d]: term index must not be negative", i)
		}
		if !IsValidTerm(item.TermName) {
			return invalidf("schedule[%d]: unknown term %q", i, item.TermName)
		}
	}
	for i, req := range req.OutstandingRequirements {
		if strings.TrimSpace(req.Course.ID) == "" {
			return invalidf("outstandingRequirements[%d]: course id is required", i)
		}
	}
	return nil
}

// Verify loads group data for the request and evaluates it. Store failures
// abort the verification with a *StoreError.
func (e *Engine) Verify(ctx context.Context, req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	snap, err := e.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	result := Evaluate(snap, e.opts.MaxChainDepth)
	e.logger.Debug().
		Int("scheduled", len(req.Schedule)).
		Int("outstanding", len(req.OutstandingRequirements)).
		Int("nodes", result.Details.NodeCount).
		Int("edges", result.Details.EdgeCount).
		Bool("cycle", result.Details.CycleDetected).
		Int("violations", len(result.Violations)).
		Int("advisories", len(result.Advisories)).
		Msg("Planner verified")
	return result, nil
}

// Load fetches groups, expands wildcard members and looks up display data.
func (e *Engine) Load(ctx context.Context, req Request) (*Snapshot, error) {
	snap := &Snapshot{Request: req, Courses: make(map[string]CourseRef)}

	scheduled := make(map[string]struct{}, len(req.Schedule))
	known := make(map[string]struct{})
	var ids []string
	for _, item := range req.Schedule {
		known[item.Course.ID] = struct{}{}
		if _, dup := scheduled[item.Course.ID]; dup {
			continue
		}
		scheduled[item.Course.ID] = struct{}{}
		ids = append(ids, item.Course.ID)
	}
	outstanding := snap.outstandingByID()
	for id := range outstanding {
		known[id] = struct{}{}
	}

	groups, err := e.loadGroups(ctx, ids, true)
	if err != nil {
		return nil, err
	}
	snap.Groups = groups

	// unscheduled prerequisites, one layer per pass
	visited := make(map[string]struct{}, len(scheduled))
	for id := range scheduled {
		visited[id] = struct{}{}
	}
	frontier := e.frontier(groups, scheduled, outstanding, visited)
	for depth := 2; len(frontier) > 0; depth++ {
		if e.opts.MaxChainDepth > 0 && depth > e.opts.MaxChainDepth {
			break
		}
		layer, err := e.loadGroups(ctx, frontier, false)
		if err != nil {
			return nil, err
		}
		snap.Ancestors = append(snap.Ancestors, layer...)
		frontier = e.frontier(layer, scheduled, outstanding, visited)
	}

	var lookup []string
	seen := make(map[string]struct{})
	for _, set := range [][]*Group{snap.Groups, snap.Ancestors} {
		for _, g := range set {
			for _, m := range g.Members {
				if m.Token.Kind != Concrete {
					continue
				}
				id := m.Token.Raw
				if _, ok := known[id]; ok {
					continue
				}
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				lookup = append(lookup, id)
			}
		}
	}
	if len(lookup) > 0 {
		courses, err := e.catalog.LookupCourses(ctx, lookup)
		if err != nil {
			return nil, storeErr("lookup courses", err)
		}
		for id, ref := range courses {
			snap.Courses[id] = ref
		}
	}
	return snap, nil
}

// frontier lists unscheduled member courses not visited yet. Pattern members
// only contribute their tracked expansions.
func (e *Engine) frontier(groups []*Group, scheduled map[string]struct{}, outstanding map[string]OutstandingRequirement, visited map[string]struct{}) []string {
	var next []string
	for _, g := range groups {
		for _, m := range g.Members {
			for _, id := range m.Expansion {
				if _, ok := scheduled[id]; ok {
					continue
				}
				if m.Token.Kind == PatternInPrefix {
					if _, tracked := outstanding[id]; !tracked {
						continue
					}
				}
				if _, ok := visited[id]; ok {
					continue
				}
				visited[id] = struct{}{}
				next = append(next, id)
			}
		}
	}
	return next
}

// loadGroups fetches groups of the given dependents with resolved members.
// Member rows of unknown groups become orphan groups when keepOrphans is set.
func (e *Engine) loadGroups(ctx context.Context, dependents []string, keepOrphans bool) ([]*Group, error) {
	if len(dependents) == 0 {
		return nil, nil
	}

	rows, err := e.groups.GroupsForDependents(ctx, dependents)
	if err != nil {
		return nil, storeErr("load groups", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	groupIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		groupIDs = append(groupIDs, r.ID)
	}
	members, err := e.groups.GroupMembers(ctx, groupIDs)
	if err != nil {
		return nil, storeErr("load group members", err)
	}

	groups := AssembleGroups(rows, members)
	if !keepOrphans {
		kept := groups[:0]
		for _, g := range groups {
			if !g.Orphan() {
				kept = append(kept, g)
			}
		}
		groups = kept
	}

	if err := e.expand(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// AssembleGroups joins group rows with member rows, preserving row order.
// Member rows that reference an unknown group id form orphan groups.
func AssembleGroups(rows []GroupRow, members []MemberRow) []*Group {
	byID := make(map[int64]*Group, len(rows))
	groups := make([]*Group, 0, len(rows))
	for _, r := range rows {
		if _, dup := byID[r.ID]; dup {
			continue
		}
		g := &Group{ID: r.ID, Dependent: r.CourseID, MinCourses: r.MinCourses}
		byID[r.ID] = g
		groups = append(groups, g)
	}

	for _, m := range members {
		g, ok := byID[m.GroupID]
		if !ok {
			g = &Group{ID: m.GroupID}
			byID[m.GroupID] = g
			groups = append(groups, g)
		}
		g.Members = append(g.Members, Member{Token: ParseToken(m.CourseID)})
	}
	return groups
}

// expand resolves every member once. Pattern lookups run concurrently.
func (e *Engine) expand(ctx context.Context, groups []*Group) error {
	var patterns []Token
	index := make(map[string]int)
	for _, g := range groups {
		for _, m := range g.Members {
			if m.Token.Kind != PatternInPrefix {
				continue
			}
			if _, ok := index[m.Token.Raw]; ok {
				continue
			}
			index[m.Token.Raw] = len(patterns)
			patterns = append(patterns, m.Token)
		}
	}

	expansions := make([][]string, len(patterns))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.opts.LookupConcurrency)
	for i, t := range patterns {
		i, t := i, t
		eg.Go(func() error {
			ids, err := Resolve(egCtx, e.catalog, t)
			if err != nil {
				return storeErr("match pattern "+t.Raw, err)
			}
			expansions[i] = ids
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, g := range groups {
		for i := range g.Members {
			t := g.Members[i].Token
			switch t.Kind {
			case Concrete:
				g.Members[i].Expansion = []string{t.Raw}
			case PatternInPrefix:
				g.Members[i].Expansion = without(expansions[index[t.Raw]], g.Dependent)
			}
		}
	}
	return nil
}

// without copies ids, dropping a group's own dependent that a pattern
// like CHCHEM matches.
func without(ids []string, dependent string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != dependent {
			out = append(out, id)
		}
	}
	return out
}

// Evaluate runs graph construction, ordering and classification over a
// loaded snapshot. It performs no I/O and is deterministic.
func Evaluate(s *Snapshot, maxChainDepth int) *Result {
	outstanding := s.outstandingByID()
	graph := BuildGraph(s.Schedule, outstanding, s.Groups)
	seq := graph.Sequence()

	c := newClassifier(s, maxChainDepth)
	c.run()
	c.checkOrphans(s.Groups)
	c.checkCycle(seq)

	return &Result{
		Violations:     nonNilFindings(c.violations),
		Advisories:     nonNilFindings(c.advisories),
		SuggestedOrder: seq.SuggestedOrder(outstanding),
		Details: Details{
			NodeCount:     len(graph.Nodes),
			EdgeCount:     len(graph.Edges),
			CycleDetected: seq.HasCycle,
		},
	}
}

func nonNilFindings(f []Finding) []Finding {
	if f == nil {
		return []Finding{}
	}
	return f
}
