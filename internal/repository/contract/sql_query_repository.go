package contract

import "context"

// SQLQueryRepository executes an already-validated read-only statement and
// returns rows keyed by literal column name.
type SQLQueryRepository interface {
	Execute(ctx context.Context, query string) ([]map[string]any, error)
}
