// Package services holds the business logic behind the HTTP controllers.
//
// Services defined in this package:
//   - CatalogService: colleges, their pathways and pathway degrees
//   - CourseService: course search and free-text course code validation
//   - RequirementService: degree requirements and what is still outstanding
//   - PlannerService: schedule verification through the planner engine
package services

import (
	"context"

	"github.com/pathwayplanner/planner/internal/app/models"
)

// CollegeStore reads colleges, pathways and degrees
type CollegeStore interface {
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	GetCollegeByID(ctx context.Context, id int64) (*models.College, error)
	GetPathwaysByCollegeID(ctx context.Context, collegeID int64) ([]*models.Pathway, error)
	GetPathwayWithDegree(ctx context.Context, pathwayID int64) (*models.Pathway, error)
	DegreeExists(ctx context.Context, degreeID int64) (bool, error)
}

// CourseStore reads catalog courses
type CourseStore interface {
	GetByIDs(ctx context.Context, ids []string) ([]*models.Course, error)
	MatchPattern(ctx context.Context, prefix, pattern string) ([]*models.Course, error)
	FindByCodes(ctx context.Context, codes []string) ([]*models.Course, error)
	Search(ctx context.Context, query string, offset uint64, limit int) ([]*models.Course, int64, error)
}

// PrerequisiteStore reads prerequisite groups
type PrerequisiteStore interface {
	GetGroupsByCourseIDs(ctx context.Context, courseIDs []string) ([]*models.PrerequisiteGroup, error)
	GetMembersByGroupIDs(ctx context.Context, groupIDs []int64) ([]*models.PrerequisiteGroupMember, error)
}

// DegreeRequirementStore reads what a degree requires
type DegreeRequirementStore interface {
	GetStandaloneRequirements(ctx context.Context, degreeID int64) ([]*models.DegreeRequirement, error)
	GetRequirementGroups(ctx context.Context, degreeID int64) ([]*models.DegreeRequirementGroup, error)
}
