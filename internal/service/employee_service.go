package service

import (
	"context"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
)

type IEmployeeService interface {
	GetAll(ctx context.Context) ([]*entity.Employee, error)
	GetById(ctx context.Context, id uint) (*entity.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*entity.Employee, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*entity.Employee, error)
}

type employeeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEmployeeService(uowFactory unitofwork.RepositoryFactory) IEmployeeService {
	return &employeeService{uowFactory: uowFactory}
}

func (s *employeeService) GetAll(ctx context.Context) ([]*entity.Employee, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EmployeeRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *employeeService) GetById(ctx context.Context, id uint) (*entity.Employee, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, serverutils.NewNotFoundError("Employee not found")
	}
	return employee, nil
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*entity.Employee, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	employee := &entity.Employee{
		Name:         req.Name,
		Email:        req.Email,
		DepartmentId: req.DepartmentId,
		Designation:  req.Designation,
		DateJoined:   req.DateJoined,
	}
	if err := uow.EmployeeRepository().Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*entity.Employee, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, serverutils.NewNotFoundError("Employee not found")
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.DepartmentId = req.DepartmentId
	employee.Designation = req.Designation
	employee.DateJoined = req.DateJoined
	if err := uow.EmployeeRepository().Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}
