package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/app/repositories"
	"github.com/pathwayplanner/planner/internal/pkg/apperrors"
)

// CatalogService defines the interface for college and pathway lookups
type CatalogService interface {
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	GetPathwaysByCollege(ctx context.Context, collegeID int64) ([]*models.Pathway, error)
	GetPathwayDegree(ctx context.Context, pathwayID int64) (*models.Degree, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	colleges CollegeStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(colleges CollegeStore) CatalogService {
	return &catalogServiceImpl{colleges: colleges}
}

// GetAllColleges retrieves all colleges
func (s *catalogServiceImpl) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.colleges.GetAllColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// GetPathwaysByCollege retrieves the pathways of an existing college
func (s *catalogServiceImpl) GetPathwaysByCollege(ctx context.Context, collegeID int64) ([]*models.Pathway, error) {
	if collegeID <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "college ID must be positive")
	}

	if _, err := s.colleges.GetCollegeByID(ctx, collegeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, fmt.Sprintf("college %d not found", collegeID))
		}
		return nil, fmt.Errorf("error checking college: %w", err)
	}

	pathways, err := s.colleges.GetPathwaysByCollegeID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving pathways: %w", err)
	}
	return pathways, nil
}

// GetPathwayDegree retrieves the degree a pathway leads to
func (s *catalogServiceImpl) GetPathwayDegree(ctx context.Context, pathwayID int64) (*models.Degree, error) {
	if pathwayID <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "pathway ID must be positive")
	}

	pathway, err := s.colleges.GetPathwayWithDegree(ctx, pathwayID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrPathwayNotFound, fmt.Sprintf("pathway %d not found", pathwayID))
		}
		return nil, fmt.Errorf("error retrieving pathway: %w", err)
	}
	return pathway.Degree, nil
}
