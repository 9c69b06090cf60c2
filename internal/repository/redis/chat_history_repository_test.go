package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"lark-inventory-be/internal/repository/contract"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRepo(t *testing.T) contract.ChatHistoryRepository {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := goredis.ParseURL(url)
	if err != nil {
		t.Fatalf("Failed to parse Redis URL: %v", err)
	}
	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: Redis unreachable: %v", err)
	}

	return NewChatHistoryRepository(rdb, time.Minute)
}

func TestChatHistoryAppendAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userId := "test-user-append"
	defer repo.Clear(ctx, userId)

	err := repo.Append(ctx, userId,
		contract.ChatTurn{Role: "user", Content: "how many assets"},
		contract.ChatTurn{Role: "assistant", Content: "three"},
	)
	assert.NoError(t, err)

	turns, err := repo.Get(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "how many assets", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
}

func TestChatHistoryClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userId := "test-user-clear"

	assert.NoError(t, repo.Append(ctx, userId, contract.ChatTurn{Role: "user", Content: "hi"}))
	assert.NoError(t, repo.Clear(ctx, userId))

	turns, err := repo.Get(ctx, userId)
	assert.NoError(t, err)
	assert.Empty(t, turns)
}

func TestChatHistoryEmptyUser(t *testing.T) {
	repo := newTestRepo(t)

	turns, err := repo.Get(context.Background(), "never-seen-user")
	assert.NoError(t, err)
	assert.Empty(t, turns)
}
