package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pathwayplanner/planner/internal/app/models"
	"github.com/pathwayplanner/planner/internal/pkg/apperrors"
	"github.com/pathwayplanner/planner/internal/pkg/dberrors"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
)

var courseColumns = []string{"id", "code", "name", "units", "terms_offered"}

const upsertCourseSQL = `
	INSERT INTO courses (id, code, name, units, terms_offered)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE
	SET code = EXCLUDED.code,
		name = EXCLUDED.name,
		units = EXCLUDED.units,
		terms_offered = EXCLUDED.terms_offered
`

// CourseRepository handles catalog course queries
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *CourseRepository) queryCourses(ctx context.Context, q squirrel.SelectBuilder, op string) ([]*models.Course, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses (%s): %w", op, err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Units, &course.TermsOffered); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a single course
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Code, &course.Name, &course.Units, &course.TermsOffered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}

// GetByIDs retrieves the known courses among ids. Unknown ids are skipped.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	q := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC")
	return r.queryCourses(ctx, q, "get courses by ids")
}

// MatchPattern retrieves courses whose id starts with prefix and whose code
// starts with pattern, ignoring case.
func (r *CourseRepository) MatchPattern(ctx context.Context, prefix, pattern string) ([]*models.Course, error) {
	q := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Like{"id": likePrefix(prefix)}).
		Where(squirrel.Like{"UPPER(code)": likePrefix(strings.ToUpper(pattern))}).
		OrderBy("id ASC")
	return r.queryCourses(ctx, q, "match pattern")
}

// FindByCodes retrieves courses whose code equals one of codes, ignoring case
func (r *CourseRepository) FindByCodes(ctx context.Context, codes []string) ([]*models.Course, error) {
	if len(codes) == 0 {
		return []*models.Course{}, nil
	}
	upper := make([]string, len(codes))
	for i, c := range codes {
		upper[i] = strings.ToUpper(c)
	}
	q := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"UPPER(code)": upper}).
		OrderBy("id ASC")
	return r.queryCourses(ctx, q, "find by codes")
}

// Search retrieves a page of courses whose code or name contains query,
// along with the total number of matches.
func (r *CourseRepository) Search(ctx context.Context, query string, offset uint64, limit int) ([]*models.Course, int64, error) {
	var filter squirrel.Sqlizer = squirrel.Expr("TRUE")
	if query = strings.TrimSpace(query); query != "" {
		filter = squirrel.Or{
			squirrel.ILike{"code": likeContains(query)},
			squirrel.ILike{"name": likeContains(query)},
		}
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("courses").Where(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	q := r.sb.Select(courseColumns...).
		From("courses").
		Where(filter).
		OrderBy("code ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit))
	courses, err := r.queryCourses(ctx, q, "search")
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// UpsertCourses inserts or refreshes courses in one batch round trip
func (r *CourseRepository) UpsertCourses(ctx context.Context, courses []models.Course) (int, error) {
	if len(courses) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, c := range courses {
		batch.Queue(upsertCourseSQL, c.ID, c.Code, c.Name, c.Units, c.TermsOffered)
	}

	results := r.db.SendBatch(ctx, batch)
	written := 0
	for i := range courses {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if dberrors.IsInvalidData(err) {
				return written, apperrors.NewCustomError(apperrors.ErrValidationFailed,
					fmt.Sprintf("course %s has a value the catalog schema rejects", courses[i].ID))
			}
			return written, fmt.Errorf("error upserting course %s: %w", courses[i].ID, err)
		}
		written++
	}
	if err := results.Close(); err != nil {
		return written, fmt.Errorf("error closing course batch: %w", err)
	}

	return written, nil
}
