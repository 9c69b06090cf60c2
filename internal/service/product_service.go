package service

import (
	"context"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
)

type IProductService interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetById(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProductService(uowFactory unitofwork.RepositoryFactory) IProductService {
	return &productService{uowFactory: uowFactory}
}

func (s *productService) GetAll(ctx context.Context) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *productService) GetById(ctx context.Context, id uint) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.NewNotFoundError("Product not found")
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product := &entity.Product{
		Name:      req.Name,
		Category:  req.Category,
		UnitPrice: req.UnitPrice,
	}
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.NewNotFoundError("Product not found")
	}

	product.Name = req.Name
	product.Category = req.Category
	product.UnitPrice = req.UnitPrice
	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return serverutils.NewNotFoundError("Product not found")
	}
	return uow.ProductRepository().Delete(ctx, id)
}
