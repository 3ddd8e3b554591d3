package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/pathwayplanner/planner/internal/app/models"
	appRepos "github.com/pathwayplanner/planner/internal/app/repositories"
)

// DefaultCourses is the sample catalog loaded into an empty database
var DefaultCourses = []appModels.Course{
	{ID: "MA0100", Code: "MATH 100", Name: "Precalculus", Units: 5, TermsOffered: "Fall,Winter,Spring,Summer"},
	{ID: "MA0101", Code: "MATH 1A", Name: "Calculus I", Units: 5, TermsOffered: "Fall,Winter,Spring"},
	{ID: "MA0102", Code: "MATH 1B", Name: "Calculus II", Units: 5, TermsOffered: "Winter,Spring"},
	{ID: "MA0410", Code: "CHEM 101", Name: "General Chemistry I", Units: 5, TermsOffered: "Fall,Winter"},
	{ID: "MA0411", Code: "CHEM 102", Name: "General Chemistry II", Units: 5, TermsOffered: "Winter,Spring"},
	{ID: "MA0412", Code: "CHEM 103", Name: "General Chemistry III", Units: 5, TermsOffered: "Spring,Summer"},
	{ID: "MA0500", Code: "PHYS 4A", Name: "Mechanics", Units: 6, TermsOffered: "Fall,Spring"},
}

type prerequisite struct {
	groupID    int64
	dependent  string
	minCourses int
	members    []string
}

var defaultPrerequisites = []prerequisite{
	{groupID: 1, dependent: "MA0101", minCourses: 1, members: []string{"MA0100"}},
	{groupID: 2, dependent: "MA0102", minCourses: 1, members: []string{"MA0101"}},
	{groupID: 3, dependent: "MA0410", minCourses: 1, members: []string{"MA0100"}},
	{groupID: 4, dependent: "MA0411", minCourses: 1, members: []string{"MA0410"}},
	{groupID: 5, dependent: "MA0412", minCourses: 1, members: []string{"MA0411"}},
	{groupID: 6, dependent: "MA0500", minCourses: 1, members: []string{"MA0101", "MA0102"}},
}

const (
	insertCollegeSQL = `
		INSERT INTO colleges (id, name, code) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`
	insertDegreeSQL = `
		INSERT INTO degrees (id, name, code) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`
	insertPathwaySQL = `
		INSERT INTO pathways (id, college_id, degree_id, name) VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING`
	insertGroupSQL = `
		INSERT INTO requirement_groups (id, course_id, min_courses) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`
	insertGroupMemberSQL = `
		INSERT INTO requirement_group_members (group_id, course_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	insertDegreeRequirementSQL = `
		INSERT INTO degree_requirements (degree_id, course_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	insertDegreeGroupSQL = `
		INSERT INTO degree_requirement_groups (id, degree_id, description, instance, min_courses)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING`
	insertDegreeGroupMemberSQL = `
		INSERT INTO degree_requirement_group_members (degree_requirement_group_id, course_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
)

// sequences that were written with explicit ids and need realigning
var serialTables = []string{"colleges", "degrees", "pathways", "requirement_groups", "degree_requirement_groups"}

// CreateDefaultData loads a small sample catalog. Every statement is idempotent,
// so running it against an already seeded database is a no-op.
func CreateDefaultData(ctx context.Context, db appRepos.DBTX, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default catalog data...")
	var finalErr error

	written, err := appRepos.NewCourseRepository(db).UpsertCourses(ctx, DefaultCourses)
	if err != nil {
		lgr.Error().Err(err).Msg("Error upserting default courses")
		finalErr = errors.Join(finalErr, err)
	} else {
		lgr.Info().Int("courses", written).Msg("Default courses upserted")
	}

	batch := buildBatch()
	results := db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			lgr.Error().Err(err).Int("statement", i).Msg("Error creating default catalog row")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if err := results.Close(); err != nil {
		finalErr = errors.Join(finalErr, fmt.Errorf("error closing seed batch: %w", err))
	}

	if finalErr == nil {
		lgr.Info().Msg("Default catalog data ready")
	}
	return finalErr
}

func buildBatch() *pgx.Batch {
	batch := &pgx.Batch{}

	batch.Queue(insertCollegeSQL, int64(1), "De Anza College", "DAC")
	batch.Queue(insertCollegeSQL, int64(2), "Foothill College", "FHC")
	batch.Queue(insertDegreeSQL, int64(1), "Chemistry B.S.", "CHEM-BS")
	batch.Queue(insertDegreeSQL, int64(2), "Physics B.S.", "PHYS-BS")
	batch.Queue(insertPathwaySQL, int64(1), int64(1), int64(1), "Chemistry Transfer Pathway")
	batch.Queue(insertPathwaySQL, int64(2), int64(1), int64(2), "Physics Transfer Pathway")
	batch.Queue(insertPathwaySQL, int64(3), int64(2), int64(1), "Chemistry Transfer Pathway")

	for _, p := range defaultPrerequisites {
		batch.Queue(insertGroupSQL, p.groupID, p.dependent, p.minCourses)
		for _, m := range p.members {
			batch.Queue(insertGroupMemberSQL, p.groupID, m)
		}
	}

	for _, id := range []string{"MA0101", "MA0410", "MA0411"} {
		batch.Queue(insertDegreeRequirementSQL, int64(1), id)
	}
	batch.Queue(insertDegreeGroupSQL, int64(1), int64(1), "Complete one chemistry elective", 1, 1)
	batch.Queue(insertDegreeGroupMemberSQL, int64(1), "MACHEM")
	batch.Queue(insertDegreeGroupSQL, int64(2), int64(1), "Complete one math elective", 1, 1)
	batch.Queue(insertDegreeGroupMemberSQL, int64(2), "MA0102")
	batch.Queue(insertDegreeGroupMemberSQL, int64(2), "MA0500")

	for _, table := range serialTables {
		batch.Queue(fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))",
			table, table))
	}

	return batch
}
