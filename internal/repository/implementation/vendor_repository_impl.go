package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VendorRepositoryImpl struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) contract.VendorRepository {
	return &VendorRepositoryImpl{db: db}
}

func (r *VendorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VendorRepositoryImpl) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *VendorRepositoryImpl) Update(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *VendorRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Vendor{}, id).Error
}

func (r *VendorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vendor, error) {
	var vendor entity.Vendor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vendor, error) {
	var vendors []*entity.Vendor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *VendorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Vendor{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
