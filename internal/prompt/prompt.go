// Package prompt turns a caller's question into the text sent to the
// generation service.
package prompt

import (
	"fmt"
	"strings"
)

// InvalidQuerySentinel is what the model is told to answer with when a
// question cannot be expressed as a single SELECT.
const InvalidQuerySentinel = "Invalid query."

// DefaultDialect is used when no driver-specific dialect is configured.
const DefaultDialect = "MySQL"

// SchemaDescription lists the college tables available to generated queries.
// It is prompt text only and is never parsed.
const SchemaDescription = `You have access to a college database with the following 5 tables:

1. departments:
   - Columns: dept_id (INT, PRIMARY KEY), dept_name (VARCHAR), building (VARCHAR)

2. professors:
   - Columns: professor_id (INT, PRIMARY KEY), first_name (VARCHAR), last_name (VARCHAR), email (VARCHAR), dept_id (INT)
   - The professors.dept_id column is a foreign key that references departments.dept_id.

3. students:
   - Columns: student_id (INT, PRIMARY KEY), first_name (VARCHAR), last_name (VARCHAR), email (VARCHAR), state (VARCHAR), cgpa (DECIMAL), enrollment_date (DATE), major_dept_id (INT)
   - The students.major_dept_id column is a foreign key that references departments.dept_id.

4. courses:
   - Columns: course_id (INT, PRIMARY KEY), course_code (VARCHAR), course_name (VARCHAR), credits (INT), dept_id (INT), professor_id (INT)
   - The courses.dept_id column references departments.dept_id.
   - The courses.professor_id column references professors.professor_id.

5. enrollments:
   - Columns: enrollment_id (INT, PRIMARY KEY), student_id (INT), course_id (INT), semester (VARCHAR), grade (DECIMAL)
   - This table links students to courses.
   - The enrollments.student_id column references students.student_id.
   - The enrollments.course_id column references courses.course_id.`

// Rules are the fixed generation constraints, in prompt order.
var Rules = []string{
	"Only generate a single, valid SQL SELECT query.",
	"Do not generate any text or explanation before or after the SQL query. Do not use markdown like ```sql.",
	"When joining tables, use clear aliases (e.g., FROM students s JOIN enrollments e ON s.student_id = e.student_id).",
	`If the user asks for something that cannot be answered with a SELECT query or is ambiguous, respond with "` + InvalidQuerySentinel + `"`,
}

// Builder assembles prompts for one SQL dialect.
type Builder struct {
	Dialect string
}

// NewBuilder returns a Builder for dialect, falling back to DefaultDialect.
func NewBuilder(dialect string) Builder {
	if strings.TrimSpace(dialect) == "" {
		dialect = DefaultDialect
	}
	return Builder{Dialect: dialect}
}

// DialectForDriver maps a database/sql driver name to the dialect named in the prompt.
func DialectForDriver(driver string) string {
	switch strings.ToLower(driver) {
	case "sqlite3", "sqlite":
		return "SQLite"
	case "pgx", "postgres", "postgresql":
		return "PostgreSQL"
	default:
		return DefaultDialect
	}
}

// Build embeds userInput verbatim. Nothing is escaped, so the question can
// carry instructions of its own into the prompt.
func (b Builder) Build(userInput string) string {
	dialect := b.Dialect
	if dialect == "" {
		dialect = DefaultDialect
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert %s assistant. Your role is to convert natural language questions into SQL queries for the college database.\n", dialect)
	fmt.Fprintf(&sb, "Given the database schema below, generate a syntactically correct %s query.\n\n", dialect)
	sb.WriteString("Database Schema:\n")
	sb.WriteString(SchemaDescription)
	sb.WriteString("\n\nRules:\n")
	for _, rule := range Rules {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString("\nUser Question: \"")
	sb.WriteString(userInput)
	sb.WriteString("\"\n\nSQL Query:\n")
	return sb.String()
}
