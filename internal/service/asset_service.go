package service

import (
	"context"

	"lark-inventory-be/internal/constant"
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
)

type IAssetService interface {
	GetAll(ctx context.Context) ([]*entity.Asset, error)
	GetById(ctx context.Context, id uint) (*entity.Asset, error)
	Create(ctx context.Context, req *dto.CreateAssetRequest) (*entity.Asset, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAssetRequest) (*entity.Asset, error)
	Delete(ctx context.Context, id uint) error

	GetVendorLinks(ctx context.Context, assetId uint) ([]*entity.AssetVendorLink, error)
	LinkVendor(ctx context.Context, assetId uint, req *dto.LinkAssetVendorRequest) (*entity.AssetVendorLink, error)
}

type assetService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAssetService(uowFactory unitofwork.RepositoryFactory) IAssetService {
	return &assetService{uowFactory: uowFactory}
}

func (s *assetService) GetAll(ctx context.Context) ([]*entity.Asset, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AssetRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *assetService) GetById(ctx context.Context, id uint) (*entity.Asset, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	asset, err := uow.AssetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, serverutils.NewNotFoundError("Asset not found")
	}
	return asset, nil
}

func (s *assetService) Create(ctx context.Context, req *dto.CreateAssetRequest) (*entity.Asset, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	status := req.Status
	if status == "" {
		status = constant.AssetStatusInUse
	}

	asset := &entity.Asset{
		AssetTag:      req.AssetTag,
		Name:          req.Name,
		Category:      req.Category,
		Location:      req.Location,
		PurchaseDate:  req.PurchaseDate,
		WarrantyUntil: req.WarrantyUntil,
		AssignedTo:    req.AssignedTo,
		DepartmentId:  req.DepartmentId,
		Status:        status,
	}
	if err := uow.AssetRepository().Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Update(ctx context.Context, id uint, req *dto.UpdateAssetRequest) (*entity.Asset, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	asset, err := uow.AssetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, serverutils.NewNotFoundError("Asset not found")
	}

	asset.AssetTag = req.AssetTag
	asset.Name = req.Name
	asset.Category = req.Category
	asset.Location = req.Location
	asset.PurchaseDate = req.PurchaseDate
	asset.WarrantyUntil = req.WarrantyUntil
	asset.AssignedTo = req.AssignedTo
	asset.DepartmentId = req.DepartmentId
	if req.Status != "" {
		asset.Status = req.Status
	}
	if err := uow.AssetRepository().Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	asset, err := uow.AssetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if asset == nil {
		return serverutils.NewNotFoundError("Asset not found")
	}
	return uow.AssetRepository().Delete(ctx, id)
}

func (s *assetService) GetVendorLinks(ctx context.Context, assetId uint) ([]*entity.AssetVendorLink, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AssetVendorLinkRepository().FindAll(ctx, specification.Filter("asset_id", assetId))
}

func (s *assetService) LinkVendor(ctx context.Context, assetId uint, req *dto.LinkAssetVendorRequest) (*entity.AssetVendorLink, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	asset, err := uow.AssetRepository().FindOne(ctx, specification.ByID{ID: assetId})
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, serverutils.NewNotFoundError("Asset not found")
	}

	vendor, err := uow.VendorRepository().FindOne(ctx, specification.ByID{ID: req.VendorId})
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, serverutils.NewNotFoundError("Vendor not found")
	}

	link := &entity.AssetVendorLink{
		AssetId:         assetId,
		VendorId:        req.VendorId,
		ServiceType:     req.ServiceType,
		LastServiceDate: req.LastServiceDate,
	}
	if err := uow.AssetVendorLinkRepository().Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}
