package memory

import (
	"time"

	"lark-inventory-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const descriptorListKey = "schema_descriptors"

// SchemaCache is a short-lived read-through cache over the descriptor
// listing, invalidated on reseed.
type SchemaCache struct {
	cache *cache.Cache
}

func NewSchemaCache() *SchemaCache {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SchemaCache{
		cache: c,
	}
}

func (r *SchemaCache) Save(descriptors []*entity.SchemaEmbedding) {
	r.cache.Set(descriptorListKey, descriptors, cache.DefaultExpiration)
}

func (r *SchemaCache) Get() ([]*entity.SchemaEmbedding, bool) {
	if x, found := r.cache.Get(descriptorListKey); found {
		return x.([]*entity.SchemaEmbedding), true
	}
	return nil, false
}

func (r *SchemaCache) Invalidate() {
	r.cache.Delete(descriptorListKey)
}
