package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DepartmentRepositoryImpl struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) contract.DepartmentRepository {
	return &DepartmentRepositoryImpl{db: db}
}

func (r *DepartmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DepartmentRepositoryImpl) Create(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *DepartmentRepositoryImpl) Update(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *DepartmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Department{}, id).Error
}

func (r *DepartmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Department, error) {
	var department entity.Department
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *DepartmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Department, error) {
	var departments []*entity.Department
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *DepartmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Department{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
