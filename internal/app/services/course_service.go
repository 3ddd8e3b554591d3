package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/pkg/helpers"
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	SearchCourses(ctx context.Context, query string, page, size int) ([]*models.Course, dto.PaginationInfo, error)
	ValidateCourseCodes(ctx context.Context, codes []string) ([]dto.CourseCodeValidation, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// NormalizeCourseCode upper-cases a free-text code and collapses its whitespace
func NormalizeCourseCode(code string) string {
	return strings.Join(strings.Fields(strings.ToUpper(code)), " ")
}

// SearchCourses retrieves one page of courses matching query
func (s *courseServiceImpl) SearchCourses(ctx context.Context, query string, page, size int) ([]*models.Course, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, total, err := s.courses.Search(ctx, query, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error searching courses: %w", err)
	}
	return courses, helpers.NewPaginationInfo(total, page, limit), nil
}

// ValidateCourseCodes reports, for each input code in order, whether the catalog knows it
func (s *courseServiceImpl) ValidateCourseCodes(ctx context.Context, codes []string) ([]dto.CourseCodeValidation, error) {
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		n := NormalizeCourseCode(code)
		if n != "" && !seen[n] {
			seen[n] = true
			normalized = append(normalized, n)
		}
	}

	found, err := s.courses.FindByCodes(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("error validating course codes: %w", err)
	}
	byCode := make(map[string]*models.Course, len(found))
	for _, c := range found {
		key := NormalizeCourseCode(c.Code)
		if _, dup := byCode[key]; !dup {
			byCode[key] = c
		}
	}

	results := make([]dto.CourseCodeValidation, 0, len(codes))
	for _, code := range codes {
		result := dto.CourseCodeValidation{Input: code}
		if c, ok := byCode[NormalizeCourseCode(code)]; ok {
			result.Valid = true
			result.CourseID = c.ID
			result.Code = c.Code
		}
		results = append(results, result)
	}
	return results, nil
}
