package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type ChatQueryLogRepository interface {
	Create(ctx context.Context, log *entity.ChatQueryLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatQueryLog, error)
}
