package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MaintenanceLogRepositoryImpl struct {
	db *gorm.DB
}

func NewMaintenanceLogRepository(db *gorm.DB) contract.MaintenanceLogRepository {
	return &MaintenanceLogRepositoryImpl{db: db}
}

func (r *MaintenanceLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MaintenanceLogRepositoryImpl) Create(ctx context.Context, log *entity.MaintenanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *MaintenanceLogRepositoryImpl) Update(ctx context.Context, log *entity.MaintenanceLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *MaintenanceLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MaintenanceLog, error) {
	var log entity.MaintenanceLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *MaintenanceLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MaintenanceLog, error) {
	var logs []*entity.MaintenanceLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *MaintenanceLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.MaintenanceLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
