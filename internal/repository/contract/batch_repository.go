package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	Update(ctx context.Context, batch *entity.Batch) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Batch, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Batch, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type BatchTrackingRepository interface {
	Create(ctx context.Context, tracking *entity.BatchTracking) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BatchTracking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BatchTracking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
