// internal/core/validation.go
package core

import (
	"regexp"
	"strings"
)

// Regular expression for valid table/column names (alphanumeric + underscore)
var nameValidationRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// selectKeyword is the only leading token a generated query may start with.
const selectKeyword = "select"

// IsValidIdentifier checks if a string is a valid identifier (e.g., table_name, column_name)
// Applies basic format and length checks.
func IsValidIdentifier(name string) bool {
	return nameValidationRegex.MatchString(name) && len(name) > 0 && len(name) <= 64
}

// IsSelectStatement reports whether generated text may be executed.
// Only the first keyword is inspected: the text is trimmed and lower-cased for
// the comparison and must start with "select". Statements stacked after a
// semicolon or hidden in comments are not detected here.
func IsSelectStatement(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(normalized, selectKeyword)
}
