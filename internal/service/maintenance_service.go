package service

import (
	"context"
	"fmt"

	"lark-inventory-be/internal/constant"
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/pkg/events"
	pktNats "lark-inventory-be/pkg/nats"
)

type IMaintenanceService interface {
	GetAll(ctx context.Context) ([]*entity.MaintenanceLog, error)
	GetById(ctx context.Context, id uint) (*entity.MaintenanceLog, error)
	Create(ctx context.Context, req *dto.CreateMaintenanceLogRequest) (*entity.MaintenanceLog, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMaintenanceLogRequest) (*entity.MaintenanceLog, error)
}

type maintenanceService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewMaintenanceService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IMaintenanceService {
	return &maintenanceService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *maintenanceService) GetAll(ctx context.Context) ([]*entity.MaintenanceLog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MaintenanceLogRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *maintenanceService) GetById(ctx context.Context, id uint) (*entity.MaintenanceLog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.MaintenanceLogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, serverutils.NewNotFoundError("Maintenance not found")
	}
	return log, nil
}

func (s *maintenanceService) Create(ctx context.Context, req *dto.CreateMaintenanceLogRequest) (*entity.MaintenanceLog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset, err := uow.AssetRepository().FindOne(ctx, specification.ByID{ID: req.AssetId})
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, serverutils.NewNotFoundError("Asset not found")
	}

	status := req.Status
	if status == "" {
		status = constant.MaintenanceStatusReported
	}

	log := &entity.MaintenanceLog{
		AssetId:            req.AssetId,
		ReportedBy:         req.ReportedBy,
		Description:        req.Description,
		Status:             status,
		AssignedEmployeeId: req.AssignedEmployeeId,
		AssignedVendorId:   req.AssignedVendorId,
		ResolvedDate:       req.ResolvedDate,
	}
	if err := uow.MaintenanceLogRepository().Create(ctx, log); err != nil {
		return nil, err
	}

	evt := events.NewMaintenanceReported(log.Id, log.AssetId)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish MAINTENANCE_REPORTED event: %v\n", err)
	}

	return log, nil
}

func (s *maintenanceService) Update(ctx context.Context, id uint, req *dto.UpdateMaintenanceLogRequest) (*entity.MaintenanceLog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.MaintenanceLogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, serverutils.NewNotFoundError("Maintenance not found")
	}

	log.AssetId = req.AssetId
	log.ReportedBy = req.ReportedBy
	log.Description = req.Description
	if req.Status != "" {
		log.Status = req.Status
	}
	log.AssignedEmployeeId = req.AssignedEmployeeId
	log.AssignedVendorId = req.AssignedVendorId
	log.ResolvedDate = req.ResolvedDate
	if err := uow.MaintenanceLogRepository().Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}
