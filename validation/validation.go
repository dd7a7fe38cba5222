// Package validation gates LLM-generated SQL before it reaches the database.
// Only single read-only statements are allowed through.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

var forbiddenKeywords = map[string]bool{
	"INSERT":   true,
	"UPDATE":   true,
	"DELETE":   true,
	"DROP":     true,
	"ALTER":    true,
	"CREATE":   true,
	"TRUNCATE": true,
	"REPLACE":  true,
	"ATTACH":   true,
	"DETACH":   true,
	"PRAGMA":   true,
	"VACUUM":   true,
	"GRANT":    true,
	"REVOKE":   true,
	"EXEC":     true,
	"EXECUTE":  true,
	"MERGE":    true,
}

// ValidateReadOnly returns an error unless sql is a single SELECT (or WITH)
// statement with no mutating keywords outside string literals.
func ValidateReadOnly(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return fmt.Errorf("empty SQL statement")
	}

	words := bareWords(trimmed)
	if len(words) == 0 {
		return fmt.Errorf("no SQL statement found")
	}

	first := strings.ToUpper(words[0])
	if first != "SELECT" && first != "WITH" {
		return fmt.Errorf("only SELECT statements are allowed, got %q", words[0])
	}

	for _, w := range words {
		if forbiddenKeywords[strings.ToUpper(w)] {
			return fmt.Errorf("statement contains forbidden keyword %q", strings.ToUpper(w))
		}
	}

	if containsStatementSeparator(trimmed) {
		return fmt.Errorf("multiple SQL statements are not allowed")
	}

	return nil
}

// bareWords extracts identifier-like tokens that appear outside single- and
// double-quoted literals, so 'update' inside a string value is not flagged.
func bareWords(sql string) []string {
	var words []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range sql {
		switch {
		case inSingle:
			if r == '\'' {
				inSingle = false
			}
		case inDouble:
			if r == '"' {
				inDouble = false
			}
		case r == '\'':
			flush()
			inSingle = true
		case r == '"':
			flush()
			inDouble = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return words
}

// containsStatementSeparator reports whether a semicolon outside string
// literals is followed by anything other than whitespace.
func containsStatementSeparator(sql string) bool {
	inSingle := false
	inDouble := false

	for i, r := range sql {
		switch {
		case inSingle:
			if r == '\'' {
				inSingle = false
			}
		case inDouble:
			if r == '"' {
				inDouble = false
			}
		case r == '\'':
			inSingle = true
		case r == '"':
			inDouble = true
		case r == ';':
			if strings.TrimSpace(sql[i+1:]) != "" {
				return true
			}
		}
	}

	return false
}
