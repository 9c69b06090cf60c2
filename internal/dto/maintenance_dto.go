package dto

import "lark-inventory-be/internal/entity"

type CreateMaintenanceLogRequest struct {
	AssetId            uint             `json:"asset_id" validate:"required"`
	ReportedBy         *uint            `json:"reported_by"`
	Description        string           `json:"description"`
	Status             string           `json:"status" validate:"omitempty,oneof=Reported 'In Progress' Resolved"`
	AssignedEmployeeId *uint            `json:"assigned_employee_id"`
	AssignedVendorId   *uint            `json:"assigned_vendor_id"`
	ResolvedDate       *entity.DateOnly `json:"resolved_date"`
}

type UpdateMaintenanceLogRequest struct {
	AssetId            uint             `json:"asset_id" validate:"required"`
	ReportedBy         *uint            `json:"reported_by"`
	Description        string           `json:"description"`
	Status             string           `json:"status" validate:"omitempty,oneof=Reported 'In Progress' Resolved"`
	AssignedEmployeeId *uint            `json:"assigned_employee_id"`
	AssignedVendorId   *uint            `json:"assigned_vendor_id"`
	ResolvedDate       *entity.DateOnly `json:"resolved_date"`
}
