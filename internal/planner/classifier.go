package planner

import (
	"fmt"
	"strings"
)

// classifier walks the schedule and sorts every unmet constraint into a
// violation or an advisory. It is built per verification and never shared.
type classifier struct {
	schedule    []ScheduleItem
	scheduled   map[string]ScheduleItem
	outstanding map[string]OutstandingRequirement
	courses     map[string]CourseRef

	// direct holds groups whose dependent is scheduled.
	direct map[string][]*Group
	// prereqs holds every loaded group by dependent, ancestors included.
	prereqs map[string][]*Group

	maxDepth int

	violations []Finding
	advisories []Finding
}

func newClassifier(s *Snapshot, maxDepth int) *classifier {
	c := &classifier{
		schedule:    s.Schedule,
		scheduled:   make(map[string]ScheduleItem, len(s.Schedule)),
		outstanding: s.outstandingByID(),
		courses:     make(map[string]CourseRef),
		direct:      make(map[string][]*Group),
		prereqs:     make(map[string][]*Group),
		maxDepth:    maxDepth,
	}

	for id, ref := range s.Courses {
		c.courses[id] = ref
	}
	for _, req := range s.OutstandingRequirements {
		c.courses[req.Course.ID] = req.Course
	}
	for _, item := range s.Schedule {
		c.courses[item.Course.ID] = item.Course
		// earliest placement wins for membership tests
		if prev, ok := c.scheduled[item.Course.ID]; !ok || item.TermIndex < prev.TermIndex {
			c.scheduled[item.Course.ID] = item
		}
	}

	for _, g := range s.Groups {
		if g.Orphan() {
			continue
		}
		c.direct[g.Dependent] = append(c.direct[g.Dependent], g)
		c.prereqs[g.Dependent] = append(c.prereqs[g.Dependent], g)
	}
	for _, g := range s.Ancestors {
		if g.Orphan() {
			continue
		}
		c.prereqs[g.Dependent] = append(c.prereqs[g.Dependent], g)
	}
	return c
}

func (c *classifier) ref(id string) CourseRef {
	if ref, ok := c.courses[id]; ok {
		if ref.ID == "" {
			ref.ID = id
		}
		return ref
	}
	return CourseRef{ID: id}
}

func (c *classifier) violate(course CourseRef, msg string, missing []CourseRef) {
	c.violations = append(c.violations, Finding{Course: &course, Message: msg, MissingPrerequisites: nonNil(missing)})
}

func (c *classifier) advise(course *CourseRef, msg string, missing []CourseRef) {
	if course != nil {
		cp := *course
		course = &cp
	}
	c.advisories = append(c.advisories, Finding{Course: course, Message: msg, MissingPrerequisites: nonNil(missing)})
}

func nonNil(refs []CourseRef) []CourseRef {
	if refs == nil {
		return []CourseRef{}
	}
	return refs
}

// run classifies every scheduled item in schedule order.
func (c *classifier) run() {
	for _, item := range c.schedule {
		reported := make(map[string]struct{})
		for _, g := range c.direct[item.Course.ID] {
			c.checkGroup(item, g, reported)
		}
		c.checkChain(item, reported)
		c.checkAvailability(item)
	}
}

// groupTally is the state of one group relative to a dependent's term.
type groupTally struct {
	satisfied int
	capacity  int
	unbounded bool
	late      []CourseRef
	tracked   []CourseRef
	untracked []CourseRef
}

// tally counts members placed strictly before term. AnyInPrefix members
// count as completed. Members placed at or after term are late; a pattern
// member is late only when none of its expansions is placed earlier.
func (c *classifier) tally(g *Group, term int) groupTally {
	var t groupTally
	counted := make(map[string]struct{})
	lateSeen := make(map[string]struct{})
	trackedSeen := make(map[string]struct{})
	untrackedSeen := make(map[string]struct{})

	addLate := func(refs []CourseRef) {
		for _, r := range refs {
			if _, dup := lateSeen[r.ID]; !dup {
				lateSeen[r.ID] = struct{}{}
				t.late = append(t.late, r)
			}
		}
	}
	addTracked := func(refs []CourseRef) {
		for _, r := range refs {
			if _, dup := trackedSeen[r.ID]; !dup {
				trackedSeen[r.ID] = struct{}{}
				t.tracked = append(t.tracked, r)
			}
		}
	}
	addUntracked := func(r CourseRef) {
		if _, dup := untrackedSeen[r.ID]; !dup {
			untrackedSeen[r.ID] = struct{}{}
			t.untracked = append(t.untracked, r)
		}
	}

	for _, m := range g.Members {
		if m.Token.Kind == AnyInPrefix {
			t.satisfied++
			t.unbounded = true
			continue
		}
		t.capacity++

		met := false
		var tracked, untracked, late []CourseRef
		for _, id := range m.Expansion {
			if it, ok := c.scheduled[id]; ok {
				if it.TermIndex < term {
					if _, dup := counted[id]; !dup {
						counted[id] = struct{}{}
						t.satisfied++
					}
					met = true
				} else {
					late = append(late, c.ref(id))
				}
				continue
			}
			if _, ok := c.outstanding[id]; ok {
				tracked = append(tracked, c.ref(id))
			} else if m.Token.Kind == Concrete {
				untracked = append(untracked, c.ref(id))
			}
		}

		if met {
			continue
		}
		addLate(late)
		addTracked(tracked)
		if m.Token.Kind == Concrete {
			for _, r := range untracked {
				addUntracked(r)
			}
			continue
		}
		// unmet pattern member without tracked expansions: the pattern itself
		if len(tracked) == 0 && len(late) == 0 {
			addUntracked(CourseRef{ID: m.Token.Raw, Code: m.Token.Display()})
		}
	}
	return t
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// memberCodes renders every member of a group for messages.
func (c *classifier) memberCodes(g *Group) string {
	codes := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		if m.Token.Kind == Concrete {
			codes = append(codes, c.ref(m.Token.Raw).Display())
			continue
		}
		codes = append(codes, m.Token.Display())
	}
	return strings.Join(codes, ", ")
}

func joinCodes(refs []CourseRef) string {
	codes := make([]string, 0, len(refs))
	for _, r := range refs {
		codes = append(codes, r.Display())
	}
	return strings.Join(codes, ", ")
}

func (c *classifier) checkGroup(item ScheduleItem, g *Group, reported map[string]struct{}) {
	course := c.ref(item.Course.ID)
	t := c.tally(g, item.TermIndex)

	for _, late := range t.late {
		reported[late.ID] = struct{}{}
		c.violate(course,
			fmt.Sprintf("%s must be scheduled earlier than %s", late.Display(), course.Display()),
			[]CourseRef{late})
	}

	if t.satisfied < g.MinCourses {
		if len(t.tracked) > 0 {
			for _, r := range t.tracked {
				reported[r.ID] = struct{}{}
			}
			c.violate(course,
				fmt.Sprintf("%s requires %d out of these courses: %s", course.Display(), g.MinCourses, c.memberCodes(g)),
				t.tracked)
		}
		if len(t.untracked) > 0 {
			for _, r := range t.untracked {
				reported[r.ID] = struct{}{}
			}
			c.advise(&course,
				fmt.Sprintf("Make sure you have taken %s before %s", joinCodes(t.untracked), course.Display()),
				t.untracked)
		}
	}

	if !t.unbounded && g.MinCourses > t.capacity {
		c.advise(&course,
			fmt.Sprintf("Database inconsistency: a prerequisite group of %s requires %d %s but only %d %s listed (%s)",
				course.Display(), g.MinCourses, plural(g.MinCourses, "course", "courses"),
				t.capacity, plural(t.capacity, "is", "are"), c.memberCodes(g)),
			nil)
	}
}

// frame is an explicit stack entry of the chain walk.
type frame struct {
	id    string
	depth int
}

// checkChain walks prerequisites of prerequisites with an explicit stack and
// a visited set. Direct members belong to checkGroup; only ancestors at
// depth two or more are collected, deduplicated in depth-first order.
func (c *classifier) checkChain(item ScheduleItem, reported map[string]struct{}) {
	visited := map[string]struct{}{item.Course.ID: {}}
	var stack []frame
	var placeholders []CourseRef

	push := func(groups []*Group, depth int) {
		var next []frame
		for _, g := range groups {
			if c.tally(g, item.TermIndex).satisfied >= g.MinCourses {
				continue
			}
			for _, m := range g.Members {
				ids, placeholder := c.unscheduledCandidates(m)
				if placeholder != nil && depth >= 2 {
					placeholders = append(placeholders, *placeholder)
				}
				for _, id := range ids {
					next = append(next, frame{id: id, depth: depth})
				}
			}
		}
		// reversed so the first member is walked first
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	push(c.direct[item.Course.ID], 1)

	var collected []CourseRef
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[f.id]; seen {
			continue
		}
		visited[f.id] = struct{}{}

		if f.depth >= 2 {
			if _, dup := reported[f.id]; !dup {
				collected = append(collected, c.ref(f.id))
			}
		}
		if c.maxDepth > 0 && f.depth >= c.maxDepth {
			continue
		}
		push(c.prereqs[f.id], f.depth+1)
	}

	var tracked, untracked []CourseRef
	for _, r := range collected {
		reported[r.ID] = struct{}{}
		if _, ok := c.outstanding[r.ID]; ok {
			tracked = append(tracked, r)
		} else {
			untracked = append(untracked, r)
		}
	}
	for _, p := range placeholders {
		if _, dup := reported[p.ID]; dup {
			continue
		}
		reported[p.ID] = struct{}{}
		untracked = append(untracked, p)
	}

	course := c.ref(item.Course.ID)
	if len(tracked) > 0 {
		c.violate(course,
			fmt.Sprintf("%s also depends on %s, which must be completed first", course.Display(), joinCodes(tracked)),
			tracked)
	}
	if len(untracked) > 0 {
		c.advise(&course,
			fmt.Sprintf("Make sure you have taken %s, required by prerequisites of %s", joinCodes(untracked), course.Display()),
			untracked)
	}
}

// unscheduledCandidates lists the unscheduled courses a member could be
// satisfied by. Concrete members yield themselves; pattern members yield
// their tracked expansions, or a placeholder when none is tracked.
func (c *classifier) unscheduledCandidates(m Member) ([]string, *CourseRef) {
	switch m.Token.Kind {
	case AnyInPrefix:
		return nil, nil
	case Concrete:
		if _, ok := c.scheduled[m.Token.Raw]; ok {
			return nil, nil
		}
		return []string{m.Token.Raw}, nil
	}

	var ids []string
	for _, id := range m.Expansion {
		if _, ok := c.scheduled[id]; ok {
			return nil, nil
		}
		if _, ok := c.outstanding[id]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, &CourseRef{ID: m.Token.Raw, Code: m.Token.Display()}
	}
	return ids, nil
}

// ParseAvailability splits an availability string into lower-cased term names.
func ParseAvailability(availability string) []string {
	var terms []string
	for _, part := range strings.Split(availability, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// checkAvailability only ever advises.
func (c *classifier) checkAvailability(item ScheduleItem) {
	req, ok := c.outstanding[item.Course.ID]
	if !ok {
		return
	}
	course := c.ref(item.Course.ID)
	terms := ParseAvailability(req.Availability)
	if len(terms) == 0 {
		c.advise(&course,
			fmt.Sprintf("%s might not be offered here; no term availability is known", course.Display()),
			nil)
		return
	}

	term := strings.ToLower(item.TermName)
	for _, t := range terms {
		if t == term {
			return
		}
	}
	c.advise(&course,
		fmt.Sprintf("%s is not scheduled on an offered term (%s is not one of: %s)", course.Display(), item.TermName, req.Availability),
		nil)
}

// checkOrphans reports member rows whose group has no dependent course.
func (c *classifier) checkOrphans(groups []*Group) {
	for _, g := range groups {
		if !g.Orphan() {
			continue
		}
		c.advise(nil,
			fmt.Sprintf("Database inconsistency: requirement group %d lists members (%s) but has no dependent course", g.ID, c.memberCodes(g)),
			nil)
	}
}

// checkCycle reports a circular prerequisite chain once per verification.
func (c *classifier) checkCycle(seq Sequence) {
	if !seq.HasCycle {
		return
	}
	involved := make([]CourseRef, 0, len(seq.Unordered))
	for _, id := range seq.Unordered {
		involved = append(involved, c.ref(id))
	}
	ordered := make([]CourseRef, 0, len(seq.Order))
	for _, id := range seq.Order {
		ordered = append(ordered, c.ref(id))
	}

	msg := fmt.Sprintf("Database inconsistency: circular prerequisites among %s", joinCodes(involved))
	if len(ordered) > 0 {
		msg += fmt.Sprintf("; only %s could be ordered", joinCodes(ordered))
	}
	c.advise(nil, msg, involved)
}
