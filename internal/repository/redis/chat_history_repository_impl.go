package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lark-inventory-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type ChatHistoryRepositoryImpl struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewChatHistoryRepository(rdb *redis.Client, ttl time.Duration) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		rdb: rdb,
		ttl: ttl,
	}
}

func historyKey(userId string) string {
	return fmt.Sprintf("user_chat:%s", userId)
}

func (r *ChatHistoryRepositoryImpl) Get(ctx context.Context, userId string) ([]contract.ChatTurn, error) {
	raw, err := r.rdb.LRange(ctx, historyKey(userId), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	turns := make([]contract.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn contract.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			// Skip malformed entries rather than failing the whole read.
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *ChatHistoryRepositoryImpl) Append(ctx context.Context, userId string, turns ...contract.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}

	key := historyKey(userId)
	items := make([]any, 0, len(turns))
	for _, turn := range turns {
		encoded, err := json.Marshal(turn)
		if err != nil {
			return err
		}
		items = append(items, string(encoded))
	}

	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, key, items...)
	pipe.Expire(ctx, key, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *ChatHistoryRepositoryImpl) Clear(ctx context.Context, userId string) error {
	return r.rdb.Del(ctx, historyKey(userId)).Err()
}
