package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

// ScoredSchemaEmbedding wraps a descriptor with its cosine distance to the
// query vector (0.0 = identical direction).
type ScoredSchemaEmbedding struct {
	Embedding *entity.SchemaEmbedding
	Distance  float64
}

type SchemaEmbeddingRepository interface {
	// Upsert inserts or replaces the descriptor keyed by table name.
	Upsert(ctx context.Context, embedding *entity.SchemaEmbedding) error
	DeleteAll(ctx context.Context) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SchemaEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SchemaEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredSchemaEmbedding, error)
}
