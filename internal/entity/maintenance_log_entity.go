package entity

import "time"

type MaintenanceLog struct {
	Id                 uint      `gorm:"primaryKey" json:"id"`
	AssetId            uint      `gorm:"index" json:"asset_id"`
	ReportedBy         *uint     `gorm:"index" json:"reported_by"`
	Description        string    `gorm:"type:text" json:"description"`
	Status             string    `gorm:"type:varchar(50);default:'Reported'" json:"status"`
	AssignedEmployeeId *uint     `gorm:"index" json:"assigned_employee_id"`
	AssignedVendorId   *uint     `gorm:"index" json:"assigned_vendor_id"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	ResolvedDate       *DateOnly `json:"resolved_date"`
}

func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}
