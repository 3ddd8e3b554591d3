package models

import "fmt"

// PrerequisiteGroup is a requirement_groups row: CourseID needs MinCourses of
// the group's members first. CourseID is nil when the dependent was removed.
type PrerequisiteGroup struct {
	ID         int64   `json:"id" db:"id"`
	CourseID   *string `json:"courseId" db:"course_id"`
	MinCourses int     `json:"minCourses" db:"min_courses"`
}

// PrerequisiteGroupMember is a requirement_group_members row. CourseID may be
// a wildcard such as MAANY or MACHEM.
type PrerequisiteGroupMember struct {
	GroupID  int64  `json:"groupId" db:"group_id"`
	CourseID string `json:"courseId" db:"course_id"`
}

// DegreeRequirement is a single course a degree requires.
type DegreeRequirement struct {
	ID       int64  `json:"id" db:"id"`
	DegreeID int64  `json:"degreeId" db:"degree_id"`
	CourseID string `json:"courseId" db:"course_id"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

// DegreeRequirementGroup is an "N of M" choice a degree requires.
type DegreeRequirementGroup struct {
	ID          int64    `json:"id" db:"id"`
	DegreeID    int64    `json:"degreeId" db:"degree_id"`
	Description string   `json:"description" db:"description"`
	Instance    int      `json:"instance" db:"instance"`
	MinCourses  int      `json:"minCourses" db:"min_courses"`
	Members     []string `json:"members"`
}

// Key identifies the group within its degree. The same description may
// appear more than once, told apart by instance.
func (g *DegreeRequirementGroup) Key() string {
	return fmt.Sprintf("%s#%d", g.Description, g.Instance)
}
