package service

import (
	"context"
	"encoding/json"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/logger"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/memory"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/pkg/embedding"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	appdto "lark-inventory-be/internal/dto"
)

type ISchemaRegistryService interface {
	// SeedAll wipes and re-populates the descriptor store, embedding
	// synchronously so the store is queryable when it returns.
	SeedAll(ctx context.Context) error

	// EnsureSeeded populates an empty store, deferring embedding to the
	// background consumer.
	EnsureSeeded(ctx context.Context) error

	// Upsert stores one descriptor and queues its embedding job.
	Upsert(ctx context.Context, tableName, document, description string) error

	// EmbedAndStore computes and persists the embedding for a stored
	// descriptor. Called from the consumer.
	EmbedAndStore(ctx context.Context, tableName string) error

	ClearAll(ctx context.Context) error

	// Search returns the top-K descriptors by cosine distance. Failures
	// degrade to an empty result, never an error.
	Search(ctx context.Context, query string, k int) []*contract.ScoredSchemaEmbedding

	ListDescriptors(ctx context.Context) ([]*entity.SchemaEmbedding, error)
}

type schemaRegistryService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	publisherService  IPublisherService
	cache             *memory.SchemaCache
	log               logger.ILogger
}

func NewSchemaRegistryService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	publisherService IPublisherService,
	cache *memory.SchemaCache,
	log logger.ILogger,
) ISchemaRegistryService {
	return &schemaRegistryService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		publisherService:  publisherService,
		cache:             cache,
		log:               log,
	}
}

func descriptorMetadata(tableName, description string) datatypes.JSON {
	meta, _ := json.Marshal(map[string]any{
		"table":       tableName,
		"type":        "schema",
		"description": description,
	})
	return datatypes.JSON(meta)
}

// embeddingText is what the vector is computed over. The structured document
// carries the column signal, the description the natural-language signal.
func embeddingText(document, description string) string {
	return document + "\n" + description
}

func (s *schemaRegistryService) SeedAll(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SchemaEmbeddingRepository()

	if err := repo.DeleteAll(ctx); err != nil {
		return err
	}

	for _, seed := range SchemaCatalog() {
		res, err := s.embeddingProvider.Generate(embeddingText(seed.Document, seed.Description), "RETRIEVAL_DOCUMENT")
		if err != nil {
			return err
		}

		vec := pgvector.NewVector(res.Embedding.Values)
		descriptor := &entity.SchemaEmbedding{
			TableName_:  seed.TableName,
			Document:    seed.Document,
			Description: seed.Description,
			Metadata:    descriptorMetadata(seed.TableName, seed.Description),
			Embedding:   &vec,
		}
		if err := repo.Upsert(ctx, descriptor); err != nil {
			return err
		}

		s.log.Info("schema_registry", "seeded schema descriptor", map[string]interface{}{
			"table": seed.TableName,
		})
	}

	s.cache.Invalidate()
	return nil
}

func (s *schemaRegistryService) EnsureSeeded(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.SchemaEmbeddingRepository().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	s.log.Info("schema_registry", "descriptor store empty, seeding", nil)
	for _, seed := range SchemaCatalog() {
		if err := s.Upsert(ctx, seed.TableName, seed.Document, seed.Description); err != nil {
			return err
		}
	}
	return nil
}

func (s *schemaRegistryService) Upsert(ctx context.Context, tableName, document, description string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	descriptor := &entity.SchemaEmbedding{
		TableName_:  tableName,
		Document:    document,
		Description: description,
		Metadata:    descriptorMetadata(tableName, description),
	}
	if err := uow.SchemaEmbeddingRepository().Upsert(ctx, descriptor); err != nil {
		return err
	}
	s.cache.Invalidate()

	payload, err := json.Marshal(appdto.PublishEmbedSchemaMessage{TableName: tableName})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func (s *schemaRegistryService) EmbedAndStore(ctx context.Context, tableName string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SchemaEmbeddingRepository()

	descriptor, err := repo.FindOne(ctx, specification.ByTableName{Name: tableName})
	if err != nil {
		return err
	}
	if descriptor == nil {
		s.log.Warn("schema_registry", "descriptor disappeared before embedding", map[string]interface{}{
			"table": tableName,
		})
		return nil
	}

	res, err := s.embeddingProvider.Generate(embeddingText(descriptor.Document, descriptor.Description), "RETRIEVAL_DOCUMENT")
	if err != nil {
		return err
	}

	vec := pgvector.NewVector(res.Embedding.Values)
	descriptor.Embedding = &vec
	return repo.Upsert(ctx, descriptor)
}

func (s *schemaRegistryService) ClearAll(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SchemaEmbeddingRepository().DeleteAll(ctx); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *schemaRegistryService) Search(ctx context.Context, query string, k int) []*contract.ScoredSchemaEmbedding {
	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		s.log.Warn("schema_registry", "query embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	matches, err := uow.SchemaEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, k)
	if err != nil {
		s.log.Warn("schema_registry", "descriptor search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return matches
}

func (s *schemaRegistryService) ListDescriptors(ctx context.Context) ([]*entity.SchemaEmbedding, error) {
	if cached, found := s.cache.Get(); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	descriptors, err := uow.SchemaEmbeddingRepository().FindAll(ctx, specification.OrderBy{Field: "table_name"})
	if err != nil {
		return nil, err
	}

	s.cache.Save(descriptors)
	return descriptors, nil
}
