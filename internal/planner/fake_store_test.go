package planner

import (
	"context"
	"sort"
	"sync"
)

// fakeStore serves groups and catalog rows from memory.
type fakeStore struct {
	mu sync.Mutex

	groups  []GroupRow
	members []MemberRow
	// strays are returned by every GroupMembers call.
	strays  []MemberRow
	courses map[string]CourseRef
	terms   map[string][]string

	err   error
	calls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courses: make(map[string]CourseRef),
		terms:   make(map[string][]string),
		calls:   make(map[string]int),
	}
}

func (f *fakeStore) course(id, code string, terms ...string) *fakeStore {
	f.courses[id] = CourseRef{ID: id, Code: code}
	if len(terms) > 0 {
		f.terms[id] = terms
	}
	return f
}

func (f *fakeStore) group(id int64, dependent string, min int, members ...string) *fakeStore {
	f.groups = append(f.groups, GroupRow{ID: id, CourseID: dependent, MinCourses: min})
	for _, m := range members {
		f.members = append(f.members, MemberRow{GroupID: id, CourseID: m})
	}
	return f
}

func (f *fakeStore) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.err
}

func (f *fakeStore) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeStore) GroupsForDependents(_ context.Context, courseIDs []string) ([]GroupRow, error) {
	if err := f.record("groups"); err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(courseIDs))
	for _, id := range courseIDs {
		want[id] = true
	}
	var out []GroupRow
	for _, g := range f.groups {
		if want[g.CourseID] {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeStore) GroupMembers(_ context.Context, groupIDs []int64) ([]MemberRow, error) {
	if err := f.record("members"); err != nil {
		return nil, err
	}
	want := make(map[int64]bool, len(groupIDs))
	for _, id := range groupIDs {
		want[id] = true
	}
	var out []MemberRow
	for _, m := range f.members {
		if want[m.GroupID] {
			out = append(out, m)
		}
	}
	return append(out, f.strays...), nil
}

func (f *fakeStore) MatchPattern(_ context.Context, prefix, pattern string) ([]CourseRef, error) {
	if err := f.record("match"); err != nil {
		return nil, err
	}
	tok := Token{Kind: PatternInPrefix, Prefix: prefix, Pattern: pattern}
	var out []CourseRef
	for _, c := range f.courses {
		if tok.Matches(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) LookupCourses(_ context.Context, ids []string) (map[string]CourseRef, error) {
	if err := f.record("lookup"); err != nil {
		return nil, err
	}
	out := make(map[string]CourseRef)
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeStore) OfferedTerms(_ context.Context, ids []string) (map[string][]string, error) {
	if err := f.record("terms"); err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for _, id := range ids {
		if t, ok := f.terms[id]; ok {
			out[id] = t
		}
	}
	return out, nil
}

func sched(id, code string, term int, name string) ScheduleItem {
	return ScheduleItem{Course: CourseRef{ID: id, Code: code}, TermIndex: term, TermName: name}
}

func outstandingReq(id, code, availability string) OutstandingRequirement {
	return OutstandingRequirement{Course: CourseRef{ID: id, Code: code}, Availability: availability}
}

func ids(refs []CourseRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}
