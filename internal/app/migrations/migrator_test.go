package migrations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestVersionOf(t *testing.T) {
	assert.Equal(t, "001", VersionOf("migrations/001_init.sql"))
	assert.Equal(t, "seed.sql", VersionOf("seed.sql"))
}

func TestMigrateFromFile_AppliesNewMigration(t *testing.T) {
	dir := t.TempDir()
	path := writeMigration(t, dir, "001_init.sql", "CREATE TABLE t (id INT);")
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);")).
		WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE t (id INT);")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs("001", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	m := NewMigrator(mock, zerolog.Nop())
	require.NoError(t, m.MigrateFromFile(context.Background(), path))
}

func TestMigrateFromFile_SkipsApplied(t *testing.T) {
	dir := t.TempDir()
	path := writeMigration(t, dir, "001_init.sql", "CREATE TABLE t (id INT);")
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	m := NewMigrator(mock, zerolog.Nop())
	require.NoError(t, m.MigrateFromFile(context.Background(), path))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFromFile_ExecFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeMigration(t, dir, "002_bad.sql", "NOT SQL;")
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("002").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("NOT SQL;")).WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	m := NewMigrator(mock, zerolog.Nop())
	err := m.MigrateFromFile(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFromDirectory_MissingDir(t *testing.T) {
	m := NewMigrator(newMock(t), zerolog.Nop())
	err := m.MigrateFromDirectory(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestMigrateFromDirectory_IgnoresNonSQL(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "README.md", "notes")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.sql"), 0o700))

	mock := newMock(t)
	m := NewMigrator(mock, zerolog.Nop())
	require.NoError(t, m.MigrateFromDirectory(context.Background(), dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}
