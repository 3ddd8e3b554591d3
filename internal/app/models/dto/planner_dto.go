package dto

import "github.com/pathwayplanner/planner/internal/planner"

// PlannerCourse identifies a course inside a planner request
type PlannerCourse struct {
	CourseID string `json:"courseId" binding:"required" example:"MA0410"`
	Code     string `json:"code" example:"CHEM 101"`
}

// ScheduleItemRequest places one course into a term of the plan
type ScheduleItemRequest struct {
	Course    PlannerCourse `json:"course"`
	TermIndex int           `json:"termIndex" binding:"min=0" example:"2"`
	TermName  string        `json:"termName" binding:"required,oneof=Fall Winter Spring Summer" example:"Spring"`
}

// OutstandingRequirementRequest is a degree requirement the student still has to take
type OutstandingRequirementRequest struct {
	Course       PlannerCourse `json:"course"`
	Availability string        `json:"availability" example:"Fall,Spring"`
}

// VerifyPlannerRequest is the body of POST /planner/verify
type VerifyPlannerRequest struct {
	Schedule                []ScheduleItemRequest           `json:"schedule" binding:"required,dive"`
	OutstandingRequirements []OutstandingRequirementRequest `json:"outstandingRequirements" binding:"required,dive"`
}

// ToPlannerRequest converts the request body into the planner input
func (r *VerifyPlannerRequest) ToPlannerRequest() planner.Request {
	req := planner.Request{
		Schedule:                make([]planner.ScheduleItem, 0, len(r.Schedule)),
		OutstandingRequirements: make([]planner.OutstandingRequirement, 0, len(r.OutstandingRequirements)),
	}
	for _, item := range r.Schedule {
		req.Schedule = append(req.Schedule, planner.ScheduleItem{
			Course:    planner.CourseRef{ID: item.Course.CourseID, Code: item.Course.Code},
			TermIndex: item.TermIndex,
			TermName:  item.TermName,
		})
	}
	for _, out := range r.OutstandingRequirements {
		req.OutstandingRequirements = append(req.OutstandingRequirements, planner.OutstandingRequirement{
			Course:       planner.CourseRef{ID: out.Course.CourseID, Code: out.Course.Code},
			Availability: out.Availability,
		})
	}
	return req
}

// VerifyPlannerResponse is the verification outcome returned to the client
type VerifyPlannerResponse struct {
	Valid bool `json:"valid" example:"false"`
	*planner.Result
}

// NewVerifyPlannerResponse wraps a planner result
func NewVerifyPlannerResponse(result *planner.Result) VerifyPlannerResponse {
	return VerifyPlannerResponse{
		Valid:  !result.HasViolations(),
		Result: result,
	}
}
