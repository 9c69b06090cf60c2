package service

import (
	"context"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
)

type IDepartmentService interface {
	GetAll(ctx context.Context) ([]*entity.Department, error)
	GetById(ctx context.Context, id uint) (*entity.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*entity.Department, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*entity.Department, error)
	Delete(ctx context.Context, id uint) error
}

type departmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDepartmentService(uowFactory unitofwork.RepositoryFactory) IDepartmentService {
	return &departmentService{uowFactory: uowFactory}
}

func (s *departmentService) GetAll(ctx context.Context) ([]*entity.Department, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DepartmentRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *departmentService) GetById(ctx context.Context, id uint) (*entity.Department, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	department, err := uow.DepartmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, serverutils.NewNotFoundError("Department not found")
	}
	return department, nil
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*entity.Department, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	department := &entity.Department{
		Name:   req.Name,
		HeadId: req.HeadId,
	}
	if err := uow.DepartmentRepository().Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentService) Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*entity.Department, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	department, err := uow.DepartmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, serverutils.NewNotFoundError("Department not found")
	}

	department.Name = req.Name
	department.HeadId = req.HeadId
	if err := uow.DepartmentRepository().Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	department, err := uow.DepartmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if department == nil {
		return serverutils.NewNotFoundError("Department not found")
	}
	return uow.DepartmentRepository().Delete(ctx, id)
}
