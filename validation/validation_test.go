package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReadOnly(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr string
	}{
		{
			name: "plain select",
			sql:  "SELECT * FROM employees",
		},
		{
			name: "lowercase select",
			sql:  "select name, salary from employees where salary > 60000",
		},
		{
			name: "cte",
			sql:  "WITH top AS (SELECT * FROM employees) SELECT * FROM top",
		},
		{
			name: "join with aggregate",
			sql:  "SELECT d.name, AVG(e.salary) FROM employees e JOIN departments d ON e.department_id = d.id GROUP BY d.name",
		},
		{
			name: "trailing semicolon only",
			sql:  "SELECT * FROM employees;",
		},
		{
			name: "column names containing keyword substrings",
			sql:  "SELECT created_at, updated_at FROM employees",
		},
		{
			name: "keyword inside string literal",
			sql:  "SELECT * FROM employees WHERE name = 'drop table'",
		},
		{
			name:    "empty",
			sql:     "   ",
			wantErr: "empty SQL statement",
		},
		{
			name:    "insert",
			sql:     "INSERT INTO employees (name) VALUES ('Eve')",
			wantErr: "only SELECT statements are allowed",
		},
		{
			name:    "update",
			sql:     "UPDATE employees SET salary = 0",
			wantErr: "only SELECT statements are allowed",
		},
		{
			name:    "drop",
			sql:     "DROP TABLE employees",
			wantErr: "only SELECT statements are allowed",
		},
		{
			name:    "select hiding a delete",
			sql:     "SELECT 1; DELETE FROM employees",
			wantErr: "forbidden keyword",
		},
		{
			name:    "multiple selects",
			sql:     "SELECT 1; SELECT 2",
			wantErr: "multiple SQL statements",
		},
		{
			name:    "pragma",
			sql:     "PRAGMA table_info(employees)",
			wantErr: "only SELECT statements are allowed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReadOnly(tc.sql)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
