package entity

import "time"

type Batch struct {
	Id               uint      `gorm:"primaryKey" json:"id"`
	ProductId        uint      `gorm:"index" json:"product_id"`
	BatchCode        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"batch_code"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	ManufacturedDate DateOnly  `gorm:"not null" json:"manufactured_date"`
	ExpiryDate       *DateOnly `json:"expiry_date"`
	CreatedBy        *uint     `gorm:"index" json:"created_by"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Batch) TableName() string {
	return "batches"
}

type BatchTracking struct {
	Id        uint      `gorm:"primaryKey" json:"id"`
	BatchId   uint      `gorm:"index" json:"batch_id"`
	Location  string    `gorm:"type:varchar(255);not null" json:"location"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	HandledBy *uint     `gorm:"index" json:"handled_by"`
}

func (BatchTracking) TableName() string {
	return "batch_tracking"
}
