package sqlguard

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAcceptsReadOnlyStatements(t *testing.T) {
	g := New(0)

	tests := []struct {
		name string
		sql  string
	}{
		{"plain select", "SELECT * FROM employees"},
		{"trailing semicolon", "SELECT name FROM departments;"},
		{"cte", "WITH recent AS (SELECT * FROM batches) SELECT * FROM recent"},
		{"join with aliases", "SELECT e.name, d.name FROM employees e JOIN departments d ON e.department_id = d.id"},
		{"string literal with keyword", "SELECT * FROM assets WHERE name = 'delete me'"},
		{"escaped quote in literal", "SELECT * FROM vendors WHERE name = 'O''Brien'"},
		{"quoted identifier", `SELECT "select" FROM products`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Validate(tt.sql)
			if err != nil {
				t.Fatalf("Validate(%q) error = %v, want nil", tt.sql, err)
			}
			if got == "" {
				t.Errorf("Validate(%q) returned empty statement", tt.sql)
			}
		})
	}
}

func TestValidateRejectsWrites(t *testing.T) {
	g := New(0)

	tests := []struct {
		name    string
		sql     string
		wantErr error
	}{
		{"empty", "", ErrEmptyStatement},
		{"whitespace only", "  ;  ", ErrEmptyStatement},
		{"insert", "INSERT INTO employees (name) VALUES ('x')", ErrNotReadOnly},
		{"update", "UPDATE products SET unit_price = 0", ErrNotReadOnly},
		{"delete", "DELETE FROM batches", ErrNotReadOnly},
		{"drop", "DROP TABLE assets", ErrNotReadOnly},
		{"select into", "SELECT * INTO backup FROM employees", ErrNotReadOnly},
		{"cte smuggling insert", "WITH x AS (INSERT INTO t VALUES (1) RETURNING *) SELECT * FROM x", ErrNotReadOnly},
		{"stacked statements", "SELECT 1; DROP TABLE employees", ErrMultipleStatements},
		{"line comment", "SELECT 1 -- hidden", ErrCommentNotAllowed},
		{"block comment", "SELECT /* hidden */ 1", ErrCommentNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Validate(tt.sql)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) error = %v, want %v", tt.sql, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCapsRows(t *testing.T) {
	g := New(500)

	got, err := g.Validate("SELECT * FROM employees")
	if err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if !strings.Contains(got, "LIMIT 500") {
		t.Errorf("Validate result = %q, want row cap applied", got)
	}
	if !strings.Contains(got, "SELECT * FROM employees") {
		t.Errorf("Validate result = %q, want original statement preserved", got)
	}
}

func TestValidateNoCapWhenZero(t *testing.T) {
	g := New(0)

	got, err := g.Validate("SELECT * FROM employees")
	if err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if got != "SELECT * FROM employees" {
		t.Errorf("Validate result = %q, want statement unchanged", got)
	}
}
