// Package storagetest provides a throwaway SQLite copy of the college
// database for tests.
package storagetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3" // Driver registration
)

// SchemaDDL mirrors the tables described to the generation service.
var SchemaDDL = []string{
	`CREATE TABLE departments (
		dept_id INTEGER PRIMARY KEY,
		dept_name VARCHAR(100) NOT NULL,
		building VARCHAR(100)
	)`,
	`CREATE TABLE professors (
		professor_id INTEGER PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100),
		dept_id INTEGER REFERENCES departments(dept_id)
	)`,
	`CREATE TABLE students (
		student_id INTEGER PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100),
		state VARCHAR(50),
		cgpa DECIMAL(3,2),
		enrollment_date DATE,
		major_dept_id INTEGER REFERENCES departments(dept_id)
	)`,
	`CREATE TABLE courses (
		course_id INTEGER PRIMARY KEY,
		course_code VARCHAR(20) NOT NULL,
		course_name VARCHAR(100) NOT NULL,
		credits INTEGER,
		dept_id INTEGER REFERENCES departments(dept_id),
		professor_id INTEGER REFERENCES professors(professor_id)
	)`,
	`CREATE TABLE enrollments (
		enrollment_id INTEGER PRIMARY KEY,
		student_id INTEGER REFERENCES students(student_id),
		course_id INTEGER REFERENCES courses(course_id),
		semester VARCHAR(20),
		grade DECIMAL(4,2)
	)`,
}

var sampleData = []string{
	`INSERT INTO departments (dept_id, dept_name, building) VALUES
		(1, 'Computer Science', 'Turing Hall'),
		(2, 'Mathematics', 'Euler Hall')`,
	`INSERT INTO professors (professor_id, first_name, last_name, email, dept_id) VALUES
		(1, 'Grace', 'Hopper', 'grace@college.edu', 1)`,
	`INSERT INTO students (student_id, first_name, last_name, email, state, cgpa, enrollment_date, major_dept_id) VALUES
		(1, 'Ada', 'Lovelace', 'ada@college.edu', 'California', 3.9, '2023-09-01', 1),
		(2, 'Alan', 'Turing', 'alan@college.edu', 'Texas', 3.7, '2022-09-01', 1),
		(3, 'Emmy', 'Noether', 'emmy@college.edu', 'Ohio', 3.8, '2023-01-15', 2)`,
	`INSERT INTO courses (course_id, course_code, course_name, credits, dept_id, professor_id) VALUES
		(1, 'CS101', 'Intro to Programming', 4, 1, 1)`,
	`INSERT INTO enrollments (enrollment_id, student_id, course_id, semester, grade) VALUES
		(1, 1, 1, 'Fall 2023', 3.9)`,
}

// NewCollegeDB creates the five empty tables in a temporary SQLite file.
// The database is closed when the test finishes.
func NewCollegeDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "college.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open test database '%s': %v", dbPath, err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	for _, stmt := range SchemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create test schema: %v", err)
		}
	}
	return db
}

// NewSeededCollegeDB is NewCollegeDB plus a handful of known rows: two
// departments, one professor, three students (two in Computer Science), one
// course and one enrollment.
func NewSeededCollegeDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewCollegeDB(t)
	for _, stmt := range sampleData {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to insert sample data: %v", err)
		}
	}
	return db
}
