package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// SchemaEmbedding stores one descriptor per business table: the structured
// schema text the model reads, a natural-language description the embedding
// is computed over, and the embedding itself. Embedding is NULL until the
// background consumer computes it; a zero-dimension vector is not a valid
// pgvector value.
type SchemaEmbedding struct {
	Id          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TableName_  string           `gorm:"column:table_name;type:varchar(100);uniqueIndex;not null" json:"table_name"`
	Document    string           `gorm:"type:text;not null" json:"document"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Metadata    datatypes.JSON   `gorm:"type:jsonb" json:"metadata"`
	Embedding   *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchemaEmbedding) TableName() string {
	return "schema_embeddings"
}
