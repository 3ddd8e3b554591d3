package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/app/repositories"
)

// memoryCatalog is an in-memory stand-in for the catalog repositories.
type memoryCatalog struct {
	mu sync.Mutex

	colleges     []*models.College
	pathways     []*models.Pathway
	degrees      map[int64]*models.Degree
	courses      map[string]*models.Course
	groups       []*models.PrerequisiteGroup
	members      []*models.PrerequisiteGroupMember
	standalone   map[int64][]*models.DegreeRequirement
	choiceGroups map[int64][]*models.DegreeRequirementGroup

	err   error
	calls map[string]int
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		degrees:      make(map[int64]*models.Degree),
		courses:      make(map[string]*models.Course),
		standalone:   make(map[int64][]*models.DegreeRequirement),
		choiceGroups: make(map[int64][]*models.DegreeRequirementGroup),
		calls:        make(map[string]int),
	}
}

func (m *memoryCatalog) course(id, code, terms string) *memoryCatalog {
	m.courses[id] = &models.Course{ID: id, Code: code, Name: code, TermsOffered: terms}
	return m
}

func (m *memoryCatalog) prereq(groupID int64, dependent string, min int, members ...string) *memoryCatalog {
	dep := dependent
	m.groups = append(m.groups, &models.PrerequisiteGroup{ID: groupID, CourseID: &dep, MinCourses: min})
	for _, c := range members {
		m.members = append(m.members, &models.PrerequisiteGroupMember{GroupID: groupID, CourseID: c})
	}
	return m
}

func (m *memoryCatalog) record(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
	return m.err
}

func (m *memoryCatalog) callCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *memoryCatalog) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	if err := m.record("colleges"); err != nil {
		return nil, err
	}
	return m.colleges, nil
}

func (m *memoryCatalog) GetCollegeByID(ctx context.Context, id int64) (*models.College, error) {
	if err := m.record("college"); err != nil {
		return nil, err
	}
	for _, c := range m.colleges {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryCatalog) GetPathwaysByCollegeID(ctx context.Context, collegeID int64) ([]*models.Pathway, error) {
	if err := m.record("pathways"); err != nil {
		return nil, err
	}
	out := []*models.Pathway{}
	for _, p := range m.pathways {
		if p.CollegeID == collegeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryCatalog) GetPathwayWithDegree(ctx context.Context, pathwayID int64) (*models.Pathway, error) {
	if err := m.record("pathway"); err != nil {
		return nil, err
	}
	for _, p := range m.pathways {
		if p.ID == pathwayID {
			withDegree := *p
			withDegree.Degree = m.degrees[p.DegreeID]
			return &withDegree, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryCatalog) DegreeExists(ctx context.Context, degreeID int64) (bool, error) {
	if err := m.record("degree"); err != nil {
		return false, err
	}
	_, ok := m.degrees[degreeID]
	return ok, nil
}

func (m *memoryCatalog) GetByIDs(ctx context.Context, ids []string) ([]*models.Course, error) {
	if err := m.record("byIDs"); err != nil {
		return nil, err
	}
	out := []*models.Course{}
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCatalog) MatchPattern(ctx context.Context, prefix, pattern string) ([]*models.Course, error) {
	if err := m.record("match"); err != nil {
		return nil, err
	}
	out := []*models.Course{}
	for _, c := range m.sortedCourses() {
		if strings.HasPrefix(c.ID, prefix) && strings.HasPrefix(strings.ToUpper(c.Code), strings.ToUpper(pattern)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCatalog) FindByCodes(ctx context.Context, codes []string) ([]*models.Course, error) {
	if err := m.record("codes"); err != nil {
		return nil, err
	}
	out := []*models.Course{}
	for _, c := range m.sortedCourses() {
		for _, code := range codes {
			if strings.EqualFold(c.Code, code) {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (m *memoryCatalog) Search(ctx context.Context, query string, offset uint64, limit int) ([]*models.Course, int64, error) {
	if err := m.record("search"); err != nil {
		return nil, 0, err
	}
	var matched []*models.Course
	for _, c := range m.sortedCourses() {
		if strings.Contains(strings.ToUpper(c.Code), strings.ToUpper(query)) {
			matched = append(matched, c)
		}
	}
	total := int64(len(matched))
	if int(offset) >= len(matched) {
		return []*models.Course{}, total, nil
	}
	end := int(offset) + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *memoryCatalog) GetGroupsByCourseIDs(ctx context.Context, courseIDs []string) ([]*models.PrerequisiteGroup, error) {
	if err := m.record("groups"); err != nil {
		return nil, err
	}
	want := toSet(courseIDs)
	out := []*models.PrerequisiteGroup{}
	for _, g := range m.groups {
		if g.CourseID != nil && want[*g.CourseID] {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memoryCatalog) GetMembersByGroupIDs(ctx context.Context, groupIDs []int64) ([]*models.PrerequisiteGroupMember, error) {
	if err := m.record("members"); err != nil {
		return nil, err
	}
	want := make(map[int64]bool, len(groupIDs))
	for _, id := range groupIDs {
		want[id] = true
	}
	out := []*models.PrerequisiteGroupMember{}
	for _, mem := range m.members {
		if want[mem.GroupID] {
			out = append(out, mem)
		}
	}
	return out, nil
}

func (m *memoryCatalog) GetStandaloneRequirements(ctx context.Context, degreeID int64) ([]*models.DegreeRequirement, error) {
	if err := m.record("standalone"); err != nil {
		return nil, err
	}
	return m.standalone[degreeID], nil
}

func (m *memoryCatalog) GetRequirementGroups(ctx context.Context, degreeID int64) ([]*models.DegreeRequirementGroup, error) {
	if err := m.record("choiceGroups"); err != nil {
		return nil, err
	}
	return m.choiceGroups[degreeID], nil
}

func (m *memoryCatalog) sortedCourses() []*models.Course {
	out := make([]*models.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
