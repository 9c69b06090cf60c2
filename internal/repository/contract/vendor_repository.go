package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vendor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vendor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
