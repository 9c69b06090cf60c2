package dto

import "lark-inventory-be/internal/entity"

type CreateAssetRequest struct {
	AssetTag      string           `json:"asset_tag" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Category      string           `json:"category"`
	Location      string           `json:"location"`
	PurchaseDate  *entity.DateOnly `json:"purchase_date"`
	WarrantyUntil *entity.DateOnly `json:"warranty_until"`
	AssignedTo    *uint            `json:"assigned_to"`
	DepartmentId  *uint            `json:"department_id"`
	Status        string           `json:"status" validate:"omitempty,oneof='In Use' 'Under Maintenance' Retired"`
}

type UpdateAssetRequest struct {
	AssetTag      string           `json:"asset_tag" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Category      string           `json:"category"`
	Location      string           `json:"location"`
	PurchaseDate  *entity.DateOnly `json:"purchase_date"`
	WarrantyUntil *entity.DateOnly `json:"warranty_until"`
	AssignedTo    *uint            `json:"assigned_to"`
	DepartmentId  *uint            `json:"department_id"`
	Status        string           `json:"status" validate:"omitempty,oneof='In Use' 'Under Maintenance' Retired"`
}

type LinkAssetVendorRequest struct {
	VendorId        uint             `json:"vendor_id" validate:"required"`
	ServiceType     string           `json:"service_type"`
	LastServiceDate *entity.DateOnly `json:"last_service_date"`
}
