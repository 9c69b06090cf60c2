package service

import (
	"context"
	"fmt"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/pkg/events"
	pktNats "lark-inventory-be/pkg/nats"
)

type IBatchService interface {
	GetAll(ctx context.Context) ([]*entity.Batch, error)
	GetById(ctx context.Context, id uint) (*entity.Batch, error)
	Create(ctx context.Context, req *dto.CreateBatchRequest) (*entity.Batch, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBatchRequest) (*entity.Batch, error)
	Delete(ctx context.Context, id uint) error

	GetTrackings(ctx context.Context, batchId uint) ([]*entity.BatchTracking, error)
	GetTracking(ctx context.Context, batchId, trackingId uint) (*entity.BatchTracking, error)
	CreateTracking(ctx context.Context, batchId uint, req *dto.CreateBatchTrackingRequest) (*entity.BatchTracking, error)
	DeleteTracking(ctx context.Context, trackingId uint) error
}

type batchService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewBatchService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IBatchService {
	return &batchService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *batchService) GetAll(ctx context.Context) ([]*entity.Batch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.BatchRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *batchService) GetById(ctx context.Context, id uint) (*entity.Batch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, serverutils.NewNotFoundError("Batch not found")
	}
	return batch, nil
}

func (s *batchService) Create(ctx context.Context, req *dto.CreateBatchRequest) (*entity.Batch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch := &entity.Batch{
		ProductId:        req.ProductId,
		BatchCode:        req.BatchCode,
		Quantity:         req.Quantity,
		ManufacturedDate: req.ManufacturedDate,
		ExpiryDate:       req.ExpiryDate,
		CreatedBy:        req.CreatedBy,
	}
	if err := uow.BatchRepository().Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *batchService) Update(ctx context.Context, id uint, req *dto.UpdateBatchRequest) (*entity.Batch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, serverutils.NewNotFoundError("Batch not found")
	}

	batch.ProductId = req.ProductId
	batch.BatchCode = req.BatchCode
	batch.Quantity = req.Quantity
	batch.ManufacturedDate = req.ManufacturedDate
	batch.ExpiryDate = req.ExpiryDate
	batch.CreatedBy = req.CreatedBy
	if err := uow.BatchRepository().Update(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *batchService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if batch == nil {
		return serverutils.NewNotFoundError("Batch not found")
	}
	return uow.BatchRepository().Delete(ctx, id)
}

func (s *batchService) GetTrackings(ctx context.Context, batchId uint) ([]*entity.BatchTracking, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: batchId})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, serverutils.NewNotFoundError("Batch not found")
	}
	return uow.BatchTrackingRepository().FindAll(ctx,
		specification.Filter("batch_id", batchId),
		specification.OrderBy{Field: "timestamp"},
	)
}

func (s *batchService) GetTracking(ctx context.Context, batchId, trackingId uint) (*entity.BatchTracking, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: batchId})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, serverutils.NewNotFoundError("Batch not found")
	}

	tracking, err := uow.BatchTrackingRepository().FindOne(ctx, specification.ByID{ID: trackingId})
	if err != nil {
		return nil, err
	}
	if tracking == nil {
		return nil, serverutils.NewNotFoundError("Tracking not found")
	}
	return tracking, nil
}

func (s *batchService) CreateTracking(ctx context.Context, batchId uint, req *dto.CreateBatchTrackingRequest) (*entity.BatchTracking, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	batch, err := uow.BatchRepository().FindOne(ctx, specification.ByID{ID: batchId})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, serverutils.NewNotFoundError("Batch not found")
	}

	tracking := &entity.BatchTracking{
		BatchId:   batchId,
		Location:  req.Location,
		Status:    req.Status,
		HandledBy: req.HandledBy,
	}
	if err := uow.BatchTrackingRepository().Create(ctx, tracking); err != nil {
		return nil, err
	}

	// Notification is auxiliary, log and move on when the bus is down.
	evt := events.NewBatchTrackingCreated(batchId, tracking.Id, tracking.Status)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish BATCH_TRACKING_CREATED event: %v\n", err)
	}

	return tracking, nil
}

func (s *batchService) DeleteTracking(ctx context.Context, trackingId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tracking, err := uow.BatchTrackingRepository().FindOne(ctx, specification.ByID{ID: trackingId})
	if err != nil {
		return err
	}
	if tracking == nil {
		return serverutils.NewNotFoundError("Tracking not found")
	}
	return uow.BatchTrackingRepository().Delete(ctx, trackingId)
}
