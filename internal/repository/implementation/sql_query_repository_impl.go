package implementation

import (
	"context"
	"time"

	"lark-inventory-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SQLQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewSQLQueryRepository(db *gorm.DB) contract.SQLQueryRepository {
	return &SQLQueryRepositoryImpl{db: db}
}

func (r *SQLQueryRepositoryImpl) Execute(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// normalizeValue makes driver values JSON-friendly.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return value
	}
}
