package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/storage/storagetest"
)

func tableNames(tables []Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

func TestOrderPutsParentsFirst(t *testing.T) {
	ordered, err := Order(CollegeTables())
	require.NoError(t, err)

	names := tableNames(ordered)
	require.Len(t, names, 5)
	position := make(map[string]int, len(names))
	for i, n := range names {
		position[n] = i
	}

	for _, table := range CollegeTables() {
		for _, dep := range table.DependsOn {
			assert.Less(t, position[dep], position[table.Name], "%s must be seeded before %s", dep, table.Name)
		}
	}
	assert.Equal(t, "departments", names[0])
	assert.Equal(t, "enrollments", names[4])
}

func TestOrderDetectsCycles(t *testing.T) {
	_, err := Order([]Table{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	})
	assert.ErrorContains(t, err, "cycle")

	_, err = Order([]Table{{Name: "a", DependsOn: []string{"missing"}}})
	assert.ErrorContains(t, err, "unknown table")
}

func TestInsertSQLPlaceholders(t *testing.T) {
	table := Table{Name: "departments", Columns: []string{"dept_id", "dept_name", "building"}}

	assert.Equal(t, "INSERT INTO departments (dept_id, dept_name, building) VALUES (?, ?, ?)",
		NewSeeder(nil, config.DriverMySQL, 1).insertSQL(table))
	assert.Equal(t, "INSERT INTO departments (dept_id, dept_name, building) VALUES ($1, $2, $3)",
		NewSeeder(nil, config.DriverPostgres, 1).insertSQL(table))
}

func TestSeederRunFillsTablesWithValidReferences(t *testing.T) {
	db := storagetest.NewCollegeDB(t)
	ctx := context.Background()

	inserted, err := NewSeeder(db, config.DriverSQLite, 4).Run(ctx, CollegeTables())
	require.NoError(t, err)
	for _, name := range []string{"departments", "professors", "students", "courses", "enrollments"} {
		assert.Equal(t, 4, inserted[name], name)
	}

	var orphans int
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM enrollments e
		LEFT JOIN students s ON e.student_id = s.student_id
		LEFT JOIN courses c ON e.course_id = c.course_id
		WHERE s.student_id IS NULL OR c.course_id IS NULL`).Scan(&orphans)
	require.NoError(t, err)
	assert.Zero(t, orphans)

	// A second run continues after the existing keys.
	_, err = NewSeeder(db, config.DriverSQLite, 2).Run(ctx, CollegeTables())
	require.NoError(t, err)

	var total, maxID int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*), MAX(student_id) FROM students").Scan(&total, &maxID))
	assert.EqualValues(t, 6, total)
	assert.EqualValues(t, 6, maxID)
}

func TestSeederRejectsBadIdentifiers(t *testing.T) {
	db := storagetest.NewCollegeDB(t)

	_, err := NewSeeder(db, config.DriverSQLite, 1).Run(context.Background(), []Table{
		{Name: "students; DROP TABLE courses", PrimaryKey: "student_id", Columns: []string{"student_id"}},
	})
	assert.ErrorContains(t, err, "invalid identifier")
}
