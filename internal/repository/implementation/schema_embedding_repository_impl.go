package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SchemaEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewSchemaEmbeddingRepository(db *gorm.DB) contract.SchemaEmbeddingRepository {
	return &SchemaEmbeddingRepositoryImpl{db: db}
}

func (r *SchemaEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// upsertColumns leaves "embedding" out of the update set when the row carries
// no vector, so a re-registered descriptor cannot null out one already stored.
func upsertColumns(embedding *entity.SchemaEmbedding) []string {
	columns := []string{"document", "description", "metadata", "updated_at"}
	if embedding.Embedding != nil {
		columns = append(columns, "embedding")
	}
	return columns
}

func (r *SchemaEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.SchemaEmbedding) error {
	query := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "table_name"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns(embedding)),
		})
	if embedding.Embedding == nil {
		query = query.Omit("embedding")
	}
	return query.Create(embedding).Error
}

func (r *SchemaEmbeddingRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&entity.SchemaEmbedding{}).Error
}

func (r *SchemaEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SchemaEmbedding, error) {
	var embedding entity.SchemaEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&embedding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &embedding, nil
}

func (r *SchemaEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SchemaEmbedding, error) {
	var embeddings []*entity.SchemaEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&embeddings).Error; err != nil {
		return nil, err
	}
	return embeddings, nil
}

func (r *SchemaEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.SchemaEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SchemaEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredSchemaEmbedding, error) {
	if limit <= 0 {
		limit = 3
	}

	// pgvector cosine distance: embedding <=> query_vector
	type result struct {
		entity.SchemaEmbedding
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("schema_embeddings").
		Select("schema_embeddings.*, embedding <=> ? as distance", queryVector).
		Where("embedding IS NOT NULL").
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredSchemaEmbedding, len(results))
	for i, res := range results {
		row := res.SchemaEmbedding
		scored[i] = &contract.ScoredSchemaEmbedding{
			Embedding: &row,
			Distance:  res.Distance,
		}
	}
	return scored, nil
}
