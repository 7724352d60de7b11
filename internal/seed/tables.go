package seed

import (
	"fmt"
	"strings"
	"time"
)

// Table describes how to fill one of the college tables.
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []string // inserted columns, primary key first
	DependsOn  []string // tables whose keys this table references
	// Row returns the values for Columns after the primary key.
	Row func(s *Seeder) []any
}

var departmentNames = []string{
	"Computer Science", "Mathematics", "Physics", "Chemistry", "Biology",
	"History", "Economics", "Philosophy", "Psychology", "English",
}

var semesters = []string{"Spring", "Summer", "Fall"}

// CollegeTables lists the five tables in declaration order; Order sorts them.
func CollegeTables() []Table {
	return []Table{
		{
			Name:       "enrollments",
			PrimaryKey: "enrollment_id",
			Columns:    []string{"enrollment_id", "student_id", "course_id", "semester", "grade"},
			DependsOn:  []string{"students", "courses"},
			Row: func(s *Seeder) []any {
				return []any{
					s.pick("students"),
					s.pick("courses"),
					fmt.Sprintf("%s %d", semesters[s.faker.IntBetween(0, len(semesters)-1)], s.faker.IntBetween(2019, 2025)),
					s.faker.Float64(2, 0, 4),
				}
			},
		},
		{
			Name:       "courses",
			PrimaryKey: "course_id",
			Columns:    []string{"course_id", "course_code", "course_name", "credits", "dept_id", "professor_id"},
			DependsOn:  []string{"departments", "professors"},
			Row: func(s *Seeder) []any {
				word := s.faker.Lorem().Word()
				return []any{
					fmt.Sprintf("%s%d", strings.ToUpper(prefix(word, 3)), s.faker.IntBetween(100, 499)),
					"Introduction to " + strings.ToUpper(prefix(word, 1)) + strings.TrimPrefix(word, prefix(word, 1)),
					s.faker.IntBetween(1, 4),
					s.pick("departments"),
					s.pick("professors"),
				}
			},
		},
		{
			Name:       "students",
			PrimaryKey: "student_id",
			Columns:    []string{"student_id", "first_name", "last_name", "email", "state", "cgpa", "enrollment_date", "major_dept_id"},
			DependsOn:  []string{"departments"},
			Row: func(s *Seeder) []any {
				person := s.faker.Person()
				return []any{
					person.FirstName(),
					person.LastName(),
					s.faker.Internet().Email(),
					s.faker.Address().State(),
					s.faker.Float64(2, 2, 4),
					time.Now().AddDate(0, 0, -s.faker.IntBetween(0, 4*365)).Format("2006-01-02"),
					s.pick("departments"),
				}
			},
		},
		{
			Name:       "professors",
			PrimaryKey: "professor_id",
			Columns:    []string{"professor_id", "first_name", "last_name", "email", "dept_id"},
			DependsOn:  []string{"departments"},
			Row: func(s *Seeder) []any {
				person := s.faker.Person()
				return []any{
					person.FirstName(),
					person.LastName(),
					s.faker.Internet().Email(),
					s.pick("departments"),
				}
			},
		},
		{
			Name:       "departments",
			PrimaryKey: "dept_id",
			Columns:    []string{"dept_id", "dept_name", "building"},
			Row: func(s *Seeder) []any {
				return []any{
					departmentNames[s.faker.IntBetween(0, len(departmentNames)-1)],
					s.faker.Person().LastName() + " Hall",
				}
			},
		},
	}
}

func prefix(word string, n int) string {
	if len(word) < n {
		return word
	}
	return word[:n]
}
