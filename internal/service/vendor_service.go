package service

import (
	"context"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
)

type IVendorService interface {
	GetAll(ctx context.Context) ([]*entity.Vendor, error)
	GetById(ctx context.Context, id uint) (*entity.Vendor, error)
	Create(ctx context.Context, req *dto.CreateVendorRequest) (*entity.Vendor, error)
	Update(ctx context.Context, id uint, req *dto.UpdateVendorRequest) (*entity.Vendor, error)
	Delete(ctx context.Context, id uint) error
}

type vendorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewVendorService(uowFactory unitofwork.RepositoryFactory) IVendorService {
	return &vendorService{uowFactory: uowFactory}
}

func (s *vendorService) GetAll(ctx context.Context) ([]*entity.Vendor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VendorRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *vendorService) GetById(ctx context.Context, id uint) (*entity.Vendor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendor, err := uow.VendorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, serverutils.NewNotFoundError("Vendor not found")
	}
	return vendor, nil
}

func (s *vendorService) Create(ctx context.Context, req *dto.CreateVendorRequest) (*entity.Vendor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendor := &entity.Vendor{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}
	if err := uow.VendorRepository().Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) Update(ctx context.Context, id uint, req *dto.UpdateVendorRequest) (*entity.Vendor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendor, err := uow.VendorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, serverutils.NewNotFoundError("Vendor not found")
	}

	vendor.Name = req.Name
	vendor.ContactPerson = req.ContactPerson
	vendor.Email = req.Email
	vendor.Phone = req.Phone
	vendor.Address = req.Address
	if err := uow.VendorRepository().Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendor, err := uow.VendorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if vendor == nil {
		return serverutils.NewNotFoundError("Vendor not found")
	}
	return uow.VendorRepository().Delete(ctx, id)
}
