package dto

import "github.com/pathwayplanner/planner/internal/app/models"

// CollegeResponse represents a college in list responses
type CollegeResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Riverside Community College"`
	Code string `json:"code" example:"RCC"`
}

// PathwayResponse represents a transfer pathway offered by a college
type PathwayResponse struct {
	ID        int64  `json:"id" example:"3"`
	CollegeID int64  `json:"collegeId" example:"1"`
	DegreeID  int64  `json:"degreeId" example:"2"`
	Name      string `json:"name" example:"Chemistry for Transfer"`
}

// DegreeResponse represents the degree a pathway leads to
type DegreeResponse struct {
	ID   int64  `json:"id" example:"2"`
	Name string `json:"name" example:"BSc Chemistry"`
	Code string `json:"code" example:"BSC-CHEM"`
}

// FromCollege converts a college model into its response
func FromCollege(c *models.College) CollegeResponse {
	return CollegeResponse{ID: c.ID, Name: c.Name, Code: c.Code}
}

// FromPathway converts a pathway model into its response
func FromPathway(p *models.Pathway) PathwayResponse {
	return PathwayResponse{ID: p.ID, CollegeID: p.CollegeID, DegreeID: p.DegreeID, Name: p.Name}
}

// FromDegree converts a degree model into its response
func FromDegree(d *models.Degree) DegreeResponse {
	return DegreeResponse{ID: d.ID, Name: d.Name, Code: d.Code}
}
