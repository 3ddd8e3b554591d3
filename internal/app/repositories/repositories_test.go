package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwayplanner/planner/internal/app/models"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func strPtr(s string) *string { return &s }

func courseRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "code", "name", "units", "terms_offered"})
}

func TestLikePrefix_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `MA%`, likePrefix("MA"))
	assert.Equal(t, `50\%\_off%`, likePrefix("50%_off"))
	assert.Equal(t, `%a\\b%`, likeContains(`a\b`))
}

func TestCollegeRepository_GetAllColleges(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, code FROM colleges ORDER BY name ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "code"}).
			AddRow(int64(1), "Lakeside College", "LSC").
			AddRow(int64(2), "Riverside College", "RCC"))

	colleges, err := NewCollegeRepository(mock).GetAllColleges(context.Background())
	require.NoError(t, err)
	require.Len(t, colleges, 2)
	assert.Equal(t, "RCC", colleges[1].Code)
}

func TestCollegeRepository_GetCollegeByID_NotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM colleges WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewCollegeRepository(mock).GetCollegeByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollegeRepository_GetPathwayWithDegree(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM pathways p JOIN degrees d ON d.id = p.degree_id WHERE p.id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "college_id", "degree_id", "name", "dname", "dcode"}).
			AddRow(int64(3), int64(1), int64(7), "Chemistry transfer", "BSc Chemistry", "BSC-CHEM"))

	pathway, err := NewCollegeRepository(mock).GetPathwayWithDegree(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pathway.Degree.ID)
	assert.Equal(t, "BSC-CHEM", pathway.Degree.Code)
}

func TestCourseRepository_MatchPattern(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id LIKE $1 AND UPPER(code) LIKE $2 ORDER BY id ASC")).
		WithArgs("MA%", "CHEM%").
		WillReturnRows(courseRows().
			AddRow("MA0410", "CHEM 101", "General Chemistry I", 5, "Fall").
			AddRow("MA0411", "CHEM 102", "General Chemistry II", 5, "Winter"))

	courses, err := NewCourseRepository(mock).MatchPattern(context.Background(), "MA", "chem")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "MA0411", courses[1].ID)
}

func TestCourseRepository_GetByIDs(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id IN ($1,$2)")).
		WithArgs("MA0100", "MA0999").
		WillReturnRows(courseRows().AddRow("MA0100", "MATH 100", "Precalculus", 4, "Fall,Spring"))

	courses, err := NewCourseRepository(mock).GetByIDs(context.Background(), []string{"MA0100", "MA0999"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, []string{"Fall", "Spring"}, courses[0].Terms())
}

func TestCourseRepository_GetByIDs_EmptySkipsQuery(t *testing.T) {
	mock := newMock(t)

	courses, err := NewCourseRepository(mock).GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseRepository_FindByCodes(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE UPPER(code) IN ($1)")).
		WithArgs("CHEM 101").
		WillReturnRows(courseRows().AddRow("MA0410", "CHEM 101", "General Chemistry I", 5, "Fall"))

	courses, err := NewCourseRepository(mock).FindByCodes(context.Background(), []string{"chem 101"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
}

func TestCourseRepository_Search(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM courses WHERE (code ILIKE $1 OR name ILIKE $2)")).
		WithArgs("%chem%", "%chem%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY code ASC, id ASC LIMIT 10 OFFSET 10")).
		WithArgs("%chem%", "%chem%").
		WillReturnRows(courseRows().AddRow("MA0412", "CHEM 201", "Organic Chemistry", 5, "Spring"))

	courses, total, err := NewCourseRepository(mock).Search(context.Background(), " chem ", 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, courses, 1)
}

func TestCourseRepository_QueryError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM courses").WillReturnError(errors.New("connection reset"))

	_, err := NewCourseRepository(mock).MatchPattern(context.Background(), "MA", "CHEM")
	assert.ErrorContains(t, err, "connection reset")
}

func TestCourseRepository_UpsertCourses_Empty(t *testing.T) {
	mock := newMock(t)

	written, err := NewCourseRepository(mock).UpsertCourses(context.Background(), []models.Course{})
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestPrerequisiteRepository_GetGroupsByCourseIDs(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, min_courses FROM requirement_groups WHERE course_id IN ($1,$2) ORDER BY id ASC")).
		WithArgs("MA0410", "MA0411").
		WillReturnRows(pgxmock.NewRows([]string{"id", "course_id", "min_courses"}).
			AddRow(int64(4), strPtr("MA0410"), 1).
			AddRow(int64(5), strPtr("MA0411"), 2))

	groups, err := NewPrerequisiteRepository(mock).GetGroupsByCourseIDs(context.Background(), []string{"MA0410", "MA0411"})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "MA0411", *groups[1].CourseID)
	assert.Equal(t, 2, groups[1].MinCourses)
}

func TestPrerequisiteRepository_GetMembersByGroupIDs(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM requirement_group_members m LEFT JOIN requirement_groups g ON g.id = m.group_id WHERE (m.group_id IN ($1) OR g.course_id IS NULL)")).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"group_id", "course_id"}).
			AddRow(int64(4), "MA0100").
			AddRow(int64(4), "MAANY").
			AddRow(int64(99), "MA0999"))

	members, err := NewPrerequisiteRepository(mock).GetMembersByGroupIDs(context.Background(), []int64{4})
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "MAANY", members[1].CourseID)
	assert.Equal(t, int64(99), members[2].GroupID, "rows of missing groups are returned as well")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDegreeRequirementRepository_GetRequirementGroups(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN degree_requirement_group_members m")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "degree_id", "description", "instance", "min_courses", "course_id"}).
			AddRow(int64(1), int64(7), "Science elective", 1, 2, strPtr("MA0500")).
			AddRow(int64(1), int64(7), "Science elective", 1, 2, strPtr("MACHEM")).
			AddRow(int64(2), int64(7), "Science elective", 2, 1, (*string)(nil)))

	groups, err := NewDegreeRequirementRepository(mock).GetRequirementGroups(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"MA0500", "MACHEM"}, groups[0].Members)
	assert.Equal(t, "Science elective#2", groups[1].Key())
	assert.Empty(t, groups[1].Members)
}

func TestDegreeRequirementRepository_GetStandaloneRequirements(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM degree_requirements dr JOIN courses c ON c.id = dr.course_id WHERE dr.degree_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "degree_id", "cid", "code", "name", "units", "terms"}).
			AddRow(int64(10), int64(7), "MA0100", "MATH 100", "Precalculus", 4, "Fall"))

	reqs, err := NewDegreeRequirementRepository(mock).GetStandaloneRequirements(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "MA0100", reqs[0].CourseID)
	assert.Equal(t, "MATH 100", reqs[0].Course.Code)
}
