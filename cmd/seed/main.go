package main

import (
	"context"
	"log"

	"lark-inventory-be/internal/config"
	"lark-inventory-be/internal/pkg/logger"
	"lark-inventory-be/internal/repository/memory"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/internal/service"
	"lark-inventory-be/pkg/database"
	"lark-inventory-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Re-seeds the schema descriptor vector store from scratch. Embeddings are
// generated synchronously so the command exits only when the store is ready.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(pubSub, cfg.Chat.EmbedTopicName)

	registry := service.NewSchemaRegistryService(
		uowFactory,
		embeddingProvider,
		publisherService,
		memory.NewSchemaCache(),
		sysLogger,
	)

	log.Println("Seeding schema descriptors...")
	if err := registry.SeedAll(context.Background()); err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}
	log.Println("✅ Schema descriptors seeded")
}
