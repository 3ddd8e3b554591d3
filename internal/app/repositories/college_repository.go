package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
)

// CollegeRepository reads colleges, their pathways and the degrees pathways lead to
type CollegeRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db DBTX) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetAllColleges retrieves all colleges ordered by name
func (r *CollegeRepository) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	sql, args, err := r.sb.Select("id", "name", "code").
		From("colleges").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all colleges query")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []*models.College{}
	for rows.Next() {
		college := &models.College{}
		if err := rows.Scan(&college.ID, &college.Name, &college.Code); err != nil {
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, nil
}

// GetCollegeByID retrieves a college by ID
func (r *CollegeRepository) GetCollegeByID(ctx context.Context, id int64) (*models.College, error) {
	sql, args, err := r.sb.Select("id", "name", "code").
		From("colleges").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college := &models.College{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&college.ID, &college.Name, &college.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("collegeID", id).Msg("Error scanning college row")
		return nil, fmt.Errorf("error getting college by ID: %w", err)
	}

	return college, nil
}

// GetPathwaysByCollegeID retrieves the pathways a college publishes
func (r *CollegeRepository) GetPathwaysByCollegeID(ctx context.Context, collegeID int64) ([]*models.Pathway, error) {
	sql, args, err := r.sb.Select("id", "college_id", "degree_id", "name").
		From("pathways").
		Where(squirrel.Eq{"college_id": collegeID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pathways query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeID", collegeID).Msg("Error executing get pathways query")
		return nil, fmt.Errorf("error querying pathways: %w", err)
	}
	defer rows.Close()

	pathways := []*models.Pathway{}
	for rows.Next() {
		pathway := &models.Pathway{}
		if err := rows.Scan(&pathway.ID, &pathway.CollegeID, &pathway.DegreeID, &pathway.Name); err != nil {
			return nil, fmt.Errorf("error scanning pathway row: %w", err)
		}
		pathways = append(pathways, pathway)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pathway rows: %w", err)
	}

	return pathways, nil
}

// GetPathwayWithDegree retrieves a pathway joined with its degree
func (r *CollegeRepository) GetPathwayWithDegree(ctx context.Context, pathwayID int64) (*models.Pathway, error) {
	sql, args, err := r.sb.Select("p.id", "p.college_id", "p.degree_id", "p.name", "d.name", "d.code").
		From("pathways p").
		Join("degrees d ON d.id = p.degree_id").
		Where(squirrel.Eq{"p.id": pathwayID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pathway query: %w", err)
	}

	pathway := &models.Pathway{Degree: &models.Degree{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&pathway.ID,
		&pathway.CollegeID,
		&pathway.DegreeID,
		&pathway.Name,
		&pathway.Degree.Name,
		&pathway.Degree.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("pathwayID", pathwayID).Msg("Error scanning pathway row")
		return nil, fmt.Errorf("error getting pathway by ID: %w", err)
	}
	pathway.Degree.ID = pathway.DegreeID

	return pathway, nil
}

// DegreeExists checks whether a degree id is known
func (r *CollegeRepository) DegreeExists(ctx context.Context, degreeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM degrees WHERE id = $1)`, degreeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking degree existence: %w", err)
	}
	return exists, nil
}
