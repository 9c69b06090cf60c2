package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
