package unitofwork

import (
	"context"
	"fmt"

	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) DepartmentRepository() contract.DepartmentRepository {
	return implementation.NewDepartmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmployeeRepository() contract.EmployeeRepository {
	return implementation.NewEmployeeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductRepository() contract.ProductRepository {
	return implementation.NewProductRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BatchRepository() contract.BatchRepository {
	return implementation.NewBatchRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BatchTrackingRepository() contract.BatchTrackingRepository {
	return implementation.NewBatchTrackingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AssetRepository() contract.AssetRepository {
	return implementation.NewAssetRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AssetVendorLinkRepository() contract.AssetVendorLinkRepository {
	return implementation.NewAssetVendorLinkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MaintenanceLogRepository() contract.MaintenanceLogRepository {
	return implementation.NewMaintenanceLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VendorRepository() contract.VendorRepository {
	return implementation.NewVendorRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SchemaEmbeddingRepository() contract.SchemaEmbeddingRepository {
	return implementation.NewSchemaEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatQueryLogRepository() contract.ChatQueryLogRepository {
	return implementation.NewChatQueryLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SQLQueryRepository() contract.SQLQueryRepository {
	return implementation.NewSQLQueryRepository(u.getDB())
}
