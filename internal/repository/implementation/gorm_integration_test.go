package implementation_test

import (
	"context"
	"log"
	"os"
	"testing"

	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.DepartmentRepository())
	assert.NotNil(t, uow.SchemaEmbeddingRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check Department Repository", func(t *testing.T) {
		count, err := uow.DepartmentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Department count: %d", count)
	})

	t.Run("Check Schema Embedding Repository", func(t *testing.T) {
		count, err := uow.SchemaEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SchemaEmbedding count: %d", count)
	})

	t.Run("Check SQL Query Repository", func(t *testing.T) {
		rows, err := uow.SQLQueryRepository().Execute(context.Background(), "SELECT 1 AS one")
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
