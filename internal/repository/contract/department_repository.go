package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Department, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Department, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
