package unitofwork

import (
	"context"

	"lark-inventory-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DepartmentRepository() contract.DepartmentRepository
	EmployeeRepository() contract.EmployeeRepository
	ProductRepository() contract.ProductRepository
	BatchRepository() contract.BatchRepository
	BatchTrackingRepository() contract.BatchTrackingRepository
	AssetRepository() contract.AssetRepository
	AssetVendorLinkRepository() contract.AssetVendorLinkRepository
	MaintenanceLogRepository() contract.MaintenanceLogRepository
	VendorRepository() contract.VendorRepository
	SchemaEmbeddingRepository() contract.SchemaEmbeddingRepository
	ChatQueryLogRepository() contract.ChatQueryLogRepository
	SQLQueryRepository() contract.SQLQueryRepository
}
