package implementation

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatQueryLogRepositoryImpl struct {
	db *gorm.DB
}

func NewChatQueryLogRepository(db *gorm.DB) contract.ChatQueryLogRepository {
	return &ChatQueryLogRepositoryImpl{db: db}
}

func (r *ChatQueryLogRepositoryImpl) Create(ctx context.Context, log *entity.ChatQueryLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ChatQueryLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatQueryLog, error) {
	var logs []*entity.ChatQueryLog
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
