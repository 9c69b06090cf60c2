package dto

import "lark-inventory-be/internal/entity"

type CreateEmployeeRequest struct {
	Name         string           `json:"name" validate:"required"`
	Email        string           `json:"email" validate:"required,email"`
	DepartmentId *uint            `json:"department_id"`
	Designation  string           `json:"designation"`
	DateJoined   *entity.DateOnly `json:"date_joined"`
}

type UpdateEmployeeRequest struct {
	Name         string           `json:"name" validate:"required"`
	Email        string           `json:"email" validate:"required,email"`
	DepartmentId *uint            `json:"department_id"`
	Designation  string           `json:"designation"`
	DateJoined   *entity.DateOnly `json:"date_joined"`
}
