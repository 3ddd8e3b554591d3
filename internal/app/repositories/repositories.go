package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of pgxpool.Pool the repositories need. pgx.Tx and
// pgxmock pools satisfy it as well.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository           *CollegeRepository
	CourseRepository            *CourseRepository
	PrerequisiteRepository      *PrerequisiteRepository
	DegreeRequirementRepository *DegreeRequirementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		CollegeRepository:           NewCollegeRepository(db),
		CourseRepository:            NewCourseRepository(db),
		PrerequisiteRepository:      NewPrerequisiteRepository(db),
		DegreeRequirementRepository: NewDegreeRequirementRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix builds a LIKE operand matching values that start with s literally.
func likePrefix(s string) string {
	return likeEscaper.Replace(s) + "%"
}

// likeContains builds a LIKE operand matching values that contain s literally.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
