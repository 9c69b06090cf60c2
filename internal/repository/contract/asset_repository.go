package contract

import (
	"context"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/specification"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Asset, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Asset, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type AssetVendorLinkRepository interface {
	Create(ctx context.Context, link *entity.AssetVendorLink) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AssetVendorLink, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AssetVendorLink, error)
}
