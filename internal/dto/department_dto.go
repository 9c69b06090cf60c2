package dto

type CreateDepartmentRequest struct {
	Name   string `json:"name" validate:"required"`
	HeadId *uint  `json:"head_id"`
}

type UpdateDepartmentRequest struct {
	Name   string `json:"name" validate:"required"`
	HeadId *uint  `json:"head_id"`
}
