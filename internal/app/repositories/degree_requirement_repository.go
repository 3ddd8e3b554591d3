package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
)

// DegreeRequirementRepository reads what a degree requires
type DegreeRequirementRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewDegreeRequirementRepository creates a new DegreeRequirementRepository
func NewDegreeRequirementRepository(db DBTX) *DegreeRequirementRepository {
	return &DegreeRequirementRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetStandaloneRequirements retrieves single-course requirements of a degree,
// joined with their course details
func (r *DegreeRequirementRepository) GetStandaloneRequirements(ctx context.Context, degreeID int64) ([]*models.DegreeRequirement, error) {
	sql, args, err := r.sb.Select("dr.id", "dr.degree_id", "c.id", "c.code", "c.name", "c.units", "c.terms_offered").
		From("degree_requirements dr").
		Join("courses c ON c.id = dr.course_id").
		Where(squirrel.Eq{"dr.degree_id": degreeID}).
		OrderBy("c.code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get degree requirements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("degreeID", degreeID).Msg("Error executing get degree requirements query")
		return nil, fmt.Errorf("error querying degree requirements: %w", err)
	}
	defer rows.Close()

	requirements := []*models.DegreeRequirement{}
	for rows.Next() {
		req := &models.DegreeRequirement{Course: &models.Course{}}
		if err := rows.Scan(
			&req.ID,
			&req.DegreeID,
			&req.Course.ID,
			&req.Course.Code,
			&req.Course.Name,
			&req.Course.Units,
			&req.Course.TermsOffered,
		); err != nil {
			return nil, fmt.Errorf("error scanning degree requirement row: %w", err)
		}
		req.CourseID = req.Course.ID
		requirements = append(requirements, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating degree requirement rows: %w", err)
	}

	return requirements, nil
}

// GetRequirementGroups retrieves the "N of M" groups of a degree with their members
func (r *DegreeRequirementRepository) GetRequirementGroups(ctx context.Context, degreeID int64) ([]*models.DegreeRequirementGroup, error) {
	sql, args, err := r.sb.Select("g.id", "g.degree_id", "g.description", "g.instance", "g.min_courses", "m.course_id").
		From("degree_requirement_groups g").
		LeftJoin("degree_requirement_group_members m ON m.degree_requirement_group_id = g.id").
		Where(squirrel.Eq{"g.degree_id": degreeID}).
		OrderBy("g.description ASC", "g.instance ASC", "m.course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get requirement groups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("degreeID", degreeID).Msg("Error executing get requirement groups query")
		return nil, fmt.Errorf("error querying requirement groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.DegreeRequirementGroup{}
	byID := make(map[int64]*models.DegreeRequirementGroup)
	for rows.Next() {
		var (
			row      models.DegreeRequirementGroup
			memberID *string
		)
		if err := rows.Scan(&row.ID, &row.DegreeID, &row.Description, &row.Instance, &row.MinCourses, &memberID); err != nil {
			return nil, fmt.Errorf("error scanning requirement group row: %w", err)
		}
		group, ok := byID[row.ID]
		if !ok {
			group = &row
			group.Members = []string{}
			byID[row.ID] = group
			groups = append(groups, group)
		}
		if memberID != nil {
			group.Members = append(group.Members, *memberID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requirement group rows: %w", err)
	}

	return groups, nil
}
