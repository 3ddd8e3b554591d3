package dto

// StandaloneRequirementResponse is a single required course of a degree
type StandaloneRequirementResponse struct {
	CourseID string `json:"courseId" example:"MA0100"`
	Code     string `json:"code" example:"MATH 100"`
	Name     string `json:"name,omitempty" example:"Precalculus"`
}

// RequirementGroupResponse is an "N of M" choice group of a degree
type RequirementGroupResponse struct {
	Key         string   `json:"key" example:"Science elective#1"`
	Description string   `json:"description" example:"Science elective"`
	Instance    int      `json:"instance" example:"1"`
	MinCourses  int      `json:"minCourses" example:"2"`
	Members     []string `json:"members" example:"MACHEM,MA0500"`
}

// DegreeRequirementsResponse lists everything a degree requires
type DegreeRequirementsResponse struct {
	DegreeID   int64                           `json:"degreeId" example:"2"`
	Standalone []StandaloneRequirementResponse `json:"standalone"`
	Groups     []RequirementGroupResponse      `json:"groups"`
}

// RemainingRequirementsRequest names what the student already satisfied
type RemainingRequirementsRequest struct {
	SatisfiedCourseIDs []string `json:"satisfiedCourseIds"`
	SatisfiedGroupKeys []string `json:"satisfiedGroupKeys"`
}

// RemainingStandaloneResponse is an unsatisfied standalone requirement
type RemainingStandaloneResponse struct {
	StandaloneRequirementResponse
	Availability string `json:"availability" example:"Fall,Spring"`
}

// RemainingGroupResponse is an unsatisfied requirement group
type RemainingGroupResponse struct {
	RequirementGroupResponse
	Availability string `json:"availability" example:"Fall,Winter,Spring,Summer"`
}

// RemainingRequirementsResponse lists outstanding requirements with availability
type RemainingRequirementsResponse struct {
	DegreeID   int64                         `json:"degreeId" example:"2"`
	Standalone []RemainingStandaloneResponse `json:"standalone"`
	Groups     []RemainingGroupResponse      `json:"groups"`
}
