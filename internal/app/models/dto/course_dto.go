package dto

import "github.com/pathwayplanner/planner/internal/app/models"

// CourseResponse represents a catalog course
type CourseResponse struct {
	ID           string   `json:"courseId" example:"MA0410"`
	Code         string   `json:"code" example:"CHEM 101"`
	Name         string   `json:"name" example:"General Chemistry I"`
	Units        int      `json:"units" example:"5"`
	TermsOffered []string `json:"termsOffered" example:"Fall,Spring"`
}

// FromCourse converts a course model into its response
func FromCourse(c *models.Course) CourseResponse {
	terms := c.Terms()
	if terms == nil {
		terms = []string{}
	}
	return CourseResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		Units:        c.Units,
		TermsOffered: terms,
	}
}

// ValidateCourseCodesRequest carries free-text course codes typed by a user
type ValidateCourseCodesRequest struct {
	Codes []string `json:"codes" binding:"required,min=1,max=50,dive,required,max=32,coursecode"`
}

// CourseCodeValidation reports whether one free-text code exists in the catalog
type CourseCodeValidation struct {
	Input    string `json:"input" example:"chem 101"`
	Valid    bool   `json:"valid" example:"true"`
	CourseID string `json:"courseId,omitempty" example:"MA0410"`
	Code     string `json:"code,omitempty" example:"CHEM 101"`
}
