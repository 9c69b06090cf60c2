package dto

import "lark-inventory-be/internal/entity"

type CreateBatchRequest struct {
	ProductId        uint             `json:"product_id" validate:"required"`
	BatchCode        string           `json:"batch_code" validate:"required"`
	Quantity         int              `json:"quantity" validate:"required,gt=0"`
	ManufacturedDate entity.DateOnly  `json:"manufactured_date" validate:"required"`
	ExpiryDate       *entity.DateOnly `json:"expiry_date"`
	CreatedBy        *uint            `json:"created_by"`
}

type UpdateBatchRequest struct {
	ProductId        uint             `json:"product_id" validate:"required"`
	BatchCode        string           `json:"batch_code" validate:"required"`
	Quantity         int              `json:"quantity" validate:"required,gt=0"`
	ManufacturedDate entity.DateOnly  `json:"manufactured_date" validate:"required"`
	ExpiryDate       *entity.DateOnly `json:"expiry_date"`
	CreatedBy        *uint            `json:"created_by"`
}

type CreateBatchTrackingRequest struct {
	Location  string `json:"location" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Manufactured 'In Transit' Delivered"`
	HandledBy *uint  `json:"handled_by"`
}
