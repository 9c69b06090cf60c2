package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type MaintenanceLogRepository interface {
	Create(ctx context.Context, log *entity.MaintenanceLog) error
	Update(ctx context.Context, log *entity.MaintenanceLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MaintenanceLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MaintenanceLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
