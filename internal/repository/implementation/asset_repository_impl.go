package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AssetRepositoryImpl struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) contract.AssetRepository {
	return &AssetRepositoryImpl{db: db}
}

func (r *AssetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssetRepositoryImpl) Create(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *AssetRepositoryImpl) Update(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

func (r *AssetRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Asset{}, id).Error
}

func (r *AssetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Asset, error) {
	var asset entity.Asset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Asset, error) {
	var assets []*entity.Asset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Asset{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type AssetVendorLinkRepositoryImpl struct {
	db *gorm.DB
}

func NewAssetVendorLinkRepository(db *gorm.DB) contract.AssetVendorLinkRepository {
	return &AssetVendorLinkRepositoryImpl{db: db}
}

func (r *AssetVendorLinkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssetVendorLinkRepositoryImpl) Create(ctx context.Context, link *entity.AssetVendorLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *AssetVendorLinkRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.AssetVendorLink{}, id).Error
}

func (r *AssetVendorLinkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AssetVendorLink, error) {
	var link entity.AssetVendorLink
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *AssetVendorLinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AssetVendorLink, error) {
	var links []*entity.AssetVendorLink
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
