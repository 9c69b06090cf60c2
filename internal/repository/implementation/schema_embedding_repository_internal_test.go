package implementation

import (
	"testing"

	"lark-inventory-be/internal/entity"

	"github.com/pgvector/pgvector-go"
)

func TestUpsertColumns(t *testing.T) {
	contains := func(columns []string, name string) bool {
		for _, c := range columns {
			if c == name {
				return true
			}
		}
		return false
	}

	t.Run("without vector", func(t *testing.T) {
		columns := upsertColumns(&entity.SchemaEmbedding{TableName_: "assets"})
		if contains(columns, "embedding") {
			t.Fatalf("update set must not touch embedding, got %v", columns)
		}
		for _, want := range []string{"document", "description", "metadata", "updated_at"} {
			if !contains(columns, want) {
				t.Fatalf("update set missing %q, got %v", want, columns)
			}
		}
	})

	t.Run("with vector", func(t *testing.T) {
		vec := pgvector.NewVector([]float32{0.1, 0.2})
		columns := upsertColumns(&entity.SchemaEmbedding{TableName_: "assets", Embedding: &vec})
		if !contains(columns, "embedding") {
			t.Fatalf("update set must include embedding, got %v", columns)
		}
	})
}
