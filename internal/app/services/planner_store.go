package services

import (
	"context"

	"github.com/pathwayplanner/planner/internal/planner"
)

// PlannerStore exposes the catalog repositories to the planner engine
type PlannerStore struct {
	courses CourseStore
	prereqs PrerequisiteStore
}

var (
	_ planner.GroupStore = (*PlannerStore)(nil)
	_ planner.Catalog    = (*PlannerStore)(nil)
)

// NewPlannerStore creates a PlannerStore
func NewPlannerStore(courses CourseStore, prereqs PrerequisiteStore) *PlannerStore {
	return &PlannerStore{courses: courses, prereqs: prereqs}
}

// GroupsForDependents implements planner.GroupStore
func (s *PlannerStore) GroupsForDependents(ctx context.Context, courseIDs []string) ([]planner.GroupRow, error) {
	groups, err := s.prereqs.GetGroupsByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	rows := make([]planner.GroupRow, 0, len(groups))
	for _, g := range groups {
		row := planner.GroupRow{ID: g.ID, MinCourses: g.MinCourses}
		if g.CourseID != nil {
			row.CourseID = *g.CourseID
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GroupMembers implements planner.GroupStore
func (s *PlannerStore) GroupMembers(ctx context.Context, groupIDs []int64) ([]planner.MemberRow, error) {
	members, err := s.prereqs.GetMembersByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	rows := make([]planner.MemberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, planner.MemberRow{GroupID: m.GroupID, CourseID: m.CourseID})
	}
	return rows, nil
}

// MatchPattern implements planner.Catalog
func (s *PlannerStore) MatchPattern(ctx context.Context, prefix, pattern string) ([]planner.CourseRef, error) {
	courses, err := s.courses.MatchPattern(ctx, prefix, pattern)
	if err != nil {
		return nil, err
	}
	refs := make([]planner.CourseRef, 0, len(courses))
	for _, c := range courses {
		refs = append(refs, planner.CourseRef{ID: c.ID, Code: c.Code})
	}
	return refs, nil
}

// LookupCourses implements planner.Catalog
func (s *PlannerStore) LookupCourses(ctx context.Context, ids []string) (map[string]planner.CourseRef, error) {
	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make(map[string]planner.CourseRef, len(courses))
	for _, c := range courses {
		refs[c.ID] = planner.CourseRef{ID: c.ID, Code: c.Code}
	}
	return refs, nil
}

// OfferedTerms implements planner.Catalog
func (s *PlannerStore) OfferedTerms(ctx context.Context, ids []string) (map[string][]string, error) {
	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	terms := make(map[string][]string, len(courses))
	for _, c := range courses {
		terms[c.ID] = c.Terms()
	}
	return terms, nil
}
