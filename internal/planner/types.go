// Package planner verifies a term-by-term course plan against prerequisite
// groups. It loads group and catalog data through GroupStore and Catalog,
// then runs a synchronous evaluation over the loaded snapshot.
package planner

import (
	"strings"
)

// Term names accepted in a schedule.
const (
	TermFall   = "Fall"
	TermWinter = "Winter"
	TermSpring = "Spring"
	TermSummer = "Summer"
)

// AllTerms lists every term in chronological order within an academic year.
var AllTerms = []string{TermFall, TermWinter, TermSpring, TermSummer}

// IsValidTerm reports whether name is one of AllTerms (case-insensitive).
func IsValidTerm(name string) bool {
	for _, t := range AllTerms {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// CourseRef identifies a course and carries its display code.
type CourseRef struct {
	ID   string `json:"courseId"`
	Code string `json:"code"`
}

// Display returns the code when known, the identifier otherwise.
func (c CourseRef) Display() string {
	if c.Code != "" {
		return c.Code
	}
	return c.ID
}

// ScheduleItem is one course placed into the plan.
type ScheduleItem struct {
	Course    CourseRef
	TermIndex int
	TermName  string
}

// OutstandingRequirement is a tracked course the user still has to take.
// Availability is a comma-joined subset of AllTerms; empty means unknown.
type OutstandingRequirement struct {
	Course       CourseRef
	Availability string
}

// Request is the input of a verification.
type Request struct {
	Schedule                []ScheduleItem
	OutstandingRequirements []OutstandingRequirement
}

// GroupRow is a requirement_groups row. CourseID is the dependent course.
type GroupRow struct {
	ID         int64
	CourseID   string
	MinCourses int
}

// MemberRow is a requirement_group_members row. CourseID may be a wildcard token.
type MemberRow struct {
	GroupID  int64
	CourseID string
}

// Group is a prerequisite group with its members parsed and resolved.
// Dependent is empty for orphan groups whose member rows referenced an
// unknown group id.
type Group struct {
	ID         int64
	Dependent  string
	MinCourses int
	Members    []Member
}

// Orphan reports whether the group has no dependent course.
func (g *Group) Orphan() bool {
	return g.Dependent == ""
}

// Member is one group member token plus the concrete courses it denotes.
// Expansion is nil for AnyInPrefix tokens.
type Member struct {
	Token     Token
	Expansion []string
}

// Finding is a violation or an advisory. Course is nil for graph-wide advisories.
type Finding struct {
	Course               *CourseRef  `json:"course,omitempty"`
	Message              string      `json:"message"`
	MissingPrerequisites []CourseRef `json:"missingPrerequisites"`
}

// Details carries graph statistics of a verification.
type Details struct {
	NodeCount     int  `json:"nodeCount"`
	EdgeCount     int  `json:"edgeCount"`
	CycleDetected bool `json:"topoHasCycle"`
}

// Result is the outcome of a verification.
type Result struct {
	Violations     []Finding   `json:"violations"`
	Advisories     []Finding   `json:"advisories"`
	SuggestedOrder []CourseRef `json:"suggestedOrder"`
	Details        Details     `json:"details"`
}

// HasViolations reports whether the plan has blocking problems.
func (r *Result) HasViolations() bool {
	return len(r.Violations) > 0
}
