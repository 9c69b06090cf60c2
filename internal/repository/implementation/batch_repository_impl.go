package implementation

import (
	"context"
	"errors"

	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BatchRepositoryImpl struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) contract.BatchRepository {
	return &BatchRepositoryImpl{db: db}
}

func (r *BatchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BatchRepositoryImpl) Create(ctx context.Context, batch *entity.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *BatchRepositoryImpl) Update(ctx context.Context, batch *entity.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

func (r *BatchRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Batch{}, id).Error
}

func (r *BatchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Batch, error) {
	var batch entity.Batch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

func (r *BatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Batch, error) {
	var batches []*entity.Batch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *BatchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Batch{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type BatchTrackingRepositoryImpl struct {
	db *gorm.DB
}

func NewBatchTrackingRepository(db *gorm.DB) contract.BatchTrackingRepository {
	return &BatchTrackingRepositoryImpl{db: db}
}

func (r *BatchTrackingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BatchTrackingRepositoryImpl) Create(ctx context.Context, tracking *entity.BatchTracking) error {
	return r.db.WithContext(ctx).Create(tracking).Error
}

func (r *BatchTrackingRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.BatchTracking{}, id).Error
}

func (r *BatchTrackingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BatchTracking, error) {
	var tracking entity.BatchTracking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&tracking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tracking, nil
}

func (r *BatchTrackingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BatchTracking, error) {
	var trackings []*entity.BatchTracking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&trackings).Error; err != nil {
		return nil, err
	}
	return trackings, nil
}

func (r *BatchTrackingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.BatchTracking{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
