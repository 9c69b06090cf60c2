package bootstrap

import (
	"context"
	"log"
	"time"

	"lark-inventory-be/internal/config"
	"lark-inventory-be/internal/controller"
	"lark-inventory-be/internal/pkg/logger"
	redisrepo "lark-inventory-be/internal/repository/redis"
	"lark-inventory-be/internal/repository/memory"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/internal/service"
	"lark-inventory-be/pkg/embedding"
	"lark-inventory-be/pkg/llm/factory"
	"lark-inventory-be/pkg/sqlguard"

	pktNats "lark-inventory-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DepartmentController  controller.IDepartmentController
	EmployeeController    controller.IEmployeeController
	ProductController     controller.IProductController
	BatchController       controller.IBatchController
	AssetController       controller.IAssetController
	MaintenanceController controller.IMaintenanceController
	VendorController      controller.IVendorController
	ChatController        controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService       service.IConsumerService
	SchemaRegistryService service.ISchemaRegistryService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	historyTTL := time.Duration(cfg.Chat.HistoryTTLMinutes) * time.Minute
	historyRepo := redisrepo.NewChatHistoryRepository(rdb, historyTTL)
	schemaCache := memory.NewSchemaCache()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Chat.EmbedTopicName)
	registryService := service.NewSchemaRegistryService(
		uowFactory,
		embeddingProvider,
		publisherService,
		schemaCache,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chat.EmbedTopicName,
		registryService,
		sysLogger,
	)

	guard := sqlguard.New(cfg.Chat.MaxResultRows)
	chatService := service.NewChatService(
		uowFactory,
		historyRepo,
		registryService,
		llmProvider,
		guard,
		cfg.Chat.RAGMode,
		sysLogger,
	)

	departmentService := service.NewDepartmentService(uowFactory)
	employeeService := service.NewEmployeeService(uowFactory)
	productService := service.NewProductService(uowFactory)
	batchService := service.NewBatchService(uowFactory, natsPub)
	assetService := service.NewAssetService(uowFactory)
	maintenanceService := service.NewMaintenanceService(uowFactory, natsPub)
	vendorService := service.NewVendorService(uowFactory)

	// 6. Controllers
	return &Container{
		DepartmentController:  controller.NewDepartmentController(departmentService),
		EmployeeController:    controller.NewEmployeeController(employeeService),
		ProductController:     controller.NewProductController(productService),
		BatchController:       controller.NewBatchController(batchService),
		AssetController:       controller.NewAssetController(assetService),
		MaintenanceController: controller.NewMaintenanceController(maintenanceService),
		VendorController:      controller.NewVendorController(vendorService),
		ChatController:        controller.NewChatController(chatService, registryService, cfg.App.JWTSecret),

		ConsumerService:       consumerService,
		SchemaRegistryService: registryService,

		Logger: sysLogger,
	}
}
