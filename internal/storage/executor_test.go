package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/storage"
	"github.com/Annany2002/querygate/internal/storage/storagetest"
)

func TestExecutorForwardsQueryVerbatim(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	query := "SELECT s.first_name, s.cgpa, s.email FROM students s;"
	mock.ExpectQuery(query).WillReturnRows(
		sqlmock.NewRows([]string{"first_name", "cgpa", "email"}).
			AddRow([]byte("Ada"), []byte("3.90"), nil).
			AddRow("Alan", 3.7, "alan@college.edu"),
	)

	rows, err := storage.NewExecutor(db).Run(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]any{"first_name": "Ada", "cgpa": "3.90", "email": nil}, rows[0])
	assert.Equal(t, "Alan", rows[1]["first_name"])
	assert.Equal(t, 3.7, rows[1]["cgpa"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutorEmptyResultIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"dept_name"}))

	rows, err := storage.NewExecutor(db).Run(context.Background(), "SELECT dept_name FROM departments WHERE 1 = 0")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExecutorWrapsDatabaseErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("Error 1146: Table 'college.student' doesn't exist")
	mock.ExpectQuery("SELECT").WillReturnError(driverErr)

	_, err = storage.NewExecutor(db).Run(context.Background(), "SELECT * FROM student")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrQueryFailed)
	assert.ErrorIs(t, err, driverErr)
}

func TestExecutorRowErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rowErr := errors.New("connection reset")
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).RowError(1, rowErr),
	)

	_, err = storage.NewExecutor(db).Run(context.Background(), "SELECT id FROM departments")
	assert.ErrorIs(t, err, storage.ErrQueryFailed)
	assert.ErrorIs(t, err, rowErr)
}

func TestExecutorAgainstSQLite(t *testing.T) {
	db := storagetest.NewSeededCollegeDB(t)

	rows, err := storage.NewExecutor(db).Run(context.Background(),
		"SELECT s.first_name, s.last_name FROM students s JOIN departments d ON s.major_dept_id = d.dept_id WHERE d.dept_name = 'Computer Science' ORDER BY s.student_id;")
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"first_name": "Ada", "last_name": "Lovelace"},
		{"first_name": "Alan", "last_name": "Turing"},
	}, rows)

	_, err = storage.NewExecutor(db).Run(context.Background(), "SELECT nope FROM students")
	assert.ErrorIs(t, err, storage.ErrQueryFailed)
}

func TestDataSourceName(t *testing.T) {
	dsn, err := storage.DataSourceName(config.DatabaseConfig{
		Driver:   config.DriverMySQL,
		Host:     "db.internal",
		User:     "reader",
		Password: "secret",
		Name:     "college",
		Port:     "3307",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader:secret@tcp(db.internal:3307)/college?parseTime=true", dsn)

	dsn, err = storage.DataSourceName(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file:test.db"})
	require.NoError(t, err)
	assert.Equal(t, "file:test.db", dsn)

	_, err = storage.DataSourceName(config.DatabaseConfig{Driver: config.DriverPostgres})
	assert.Error(t, err)

	_, err = storage.DataSourceName(config.DatabaseConfig{Driver: "mssql"})
	assert.Error(t, err)
}

func TestConnectSQLite(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := storage.Connect(ctx, config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          t.TempDir() + "/connect.db",
		MaxOpenConns: 10,
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 10, db.Stats().MaxOpenConnections)
}
