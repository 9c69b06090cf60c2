package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EmployeeRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

func (r *EmployeeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *EmployeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	var employee entity.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	var employees []*entity.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Employee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
