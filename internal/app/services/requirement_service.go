package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/pkg/apperrors"
	"github.com/pathwayplanner/planner/internal/planner"
)

// RequirementService defines the interface for degree requirement operations
type RequirementService interface {
	GetDegreeRequirements(ctx context.Context, degreeID int64) (*dto.DegreeRequirementsResponse, error)
	GetRemainingRequirements(ctx context.Context, degreeID int64, req dto.RemainingRequirementsRequest) (*dto.RemainingRequirementsResponse, error)
}

// requirementServiceImpl implements the RequirementService interface
type requirementServiceImpl struct {
	colleges     CollegeStore
	requirements DegreeRequirementStore
	catalog      planner.Catalog
	concurrency  int
}

// NewRequirementService creates a new requirement service instance
func NewRequirementService(colleges CollegeStore, requirements DegreeRequirementStore, catalog planner.Catalog, concurrency int) RequirementService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &requirementServiceImpl{
		colleges:     colleges,
		requirements: requirements,
		catalog:      catalog,
		concurrency:  concurrency,
	}
}

func (s *requirementServiceImpl) load(ctx context.Context, degreeID int64) ([]*models.DegreeRequirement, []*models.DegreeRequirementGroup, error) {
	if degreeID <= 0 {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "degree ID must be positive")
	}

	exists, err := s.colleges.DegreeExists(ctx, degreeID)
	if err != nil {
		return nil, nil, fmt.Errorf("error checking degree: %w", err)
	}
	if !exists {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrDegreeNotFound, fmt.Sprintf("degree %d not found", degreeID))
	}

	standalone, err := s.requirements.GetStandaloneRequirements(ctx, degreeID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving degree requirements: %w", err)
	}
	groups, err := s.requirements.GetRequirementGroups(ctx, degreeID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving requirement groups: %w", err)
	}
	return standalone, groups, nil
}

func standaloneResponse(r *models.DegreeRequirement) dto.StandaloneRequirementResponse {
	resp := dto.StandaloneRequirementResponse{CourseID: r.CourseID}
	if r.Course != nil {
		resp.Code = r.Course.Code
		resp.Name = r.Course.Name
	}
	return resp
}

func groupResponse(g *models.DegreeRequirementGroup) dto.RequirementGroupResponse {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return dto.RequirementGroupResponse{
		Key:         g.Key(),
		Description: g.Description,
		Instance:    g.Instance,
		MinCourses:  g.MinCourses,
		Members:     members,
	}
}

// GetDegreeRequirements lists standalone requirements and choice groups of a degree
func (s *requirementServiceImpl) GetDegreeRequirements(ctx context.Context, degreeID int64) (*dto.DegreeRequirementsResponse, error) {
	standalone, groups, err := s.load(ctx, degreeID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DegreeRequirementsResponse{
		DegreeID:   degreeID,
		Standalone: make([]dto.StandaloneRequirementResponse, 0, len(standalone)),
		Groups:     make([]dto.RequirementGroupResponse, 0, len(groups)),
	}
	for _, r := range standalone {
		resp.Standalone = append(resp.Standalone, standaloneResponse(r))
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, groupResponse(g))
	}
	return resp, nil
}

// GetRemainingRequirements lists what the student has not yet satisfied, with
// the terms each remaining requirement can be taken in
func (s *requirementServiceImpl) GetRemainingRequirements(ctx context.Context, degreeID int64, req dto.RemainingRequirementsRequest) (*dto.RemainingRequirementsResponse, error) {
	standalone, groups, err := s.load(ctx, degreeID)
	if err != nil {
		return nil, err
	}

	satisfiedCourses := toSet(req.SatisfiedCourseIDs)
	satisfiedGroups := toSet(req.SatisfiedGroupKeys)

	resp := &dto.RemainingRequirementsResponse{
		DegreeID:   degreeID,
		Standalone: []dto.RemainingStandaloneResponse{},
		Groups:     []dto.RemainingGroupResponse{},
	}
	for _, r := range standalone {
		if satisfiedCourses[r.CourseID] {
			continue
		}
		var terms []string
		if r.Course != nil {
			terms = r.Course.Terms()
		}
		resp.Standalone = append(resp.Standalone, dto.RemainingStandaloneResponse{
			StandaloneRequirementResponse: standaloneResponse(r),
			Availability:                  planner.FormatAvailability(terms),
		})
	}

	var pending []*models.DegreeRequirementGroup
	for _, g := range groups {
		if !satisfiedGroups[g.Key()] {
			pending = append(pending, g)
		}
	}

	availability := make([]string, len(pending))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i, g := range pending {
		eg.Go(func() error {
			tokens := make([]planner.Token, 0, len(g.Members))
			for _, m := range g.Members {
				tokens = append(tokens, planner.ParseToken(m))
			}
			terms, err := planner.ResolveAvailability(egCtx, s.catalog, tokens)
			if err != nil {
				return err
			}
			availability[i] = terms
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("error resolving group availability: %w", err)
	}

	for i, g := range pending {
		resp.Groups = append(resp.Groups, dto.RemainingGroupResponse{
			RequirementGroupResponse: groupResponse(g),
			Availability:             availability[i],
		})
	}
	return resp, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
