package entity

type Asset struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	AssetTag      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"asset_tag"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Category      string    `gorm:"type:varchar(255)" json:"category"`
	Location      string    `gorm:"type:varchar(255)" json:"location"`
	PurchaseDate  *DateOnly `json:"purchase_date"`
	WarrantyUntil *DateOnly `json:"warranty_until"`
	AssignedTo    *uint     `gorm:"index" json:"assigned_to"`
	DepartmentId  *uint     `gorm:"index" json:"department_id"`
	Status        string    `gorm:"type:varchar(50);default:'In Use'" json:"status"`
}

func (Asset) TableName() string {
	return "assets"
}

type AssetVendorLink struct {
	Id              uint      `gorm:"primaryKey" json:"id"`
	AssetId         uint      `gorm:"index" json:"asset_id"`
	VendorId        uint      `gorm:"index" json:"vendor_id"`
	ServiceType     string    `gorm:"type:varchar(255)" json:"service_type"`
	LastServiceDate *DateOnly `json:"last_service_date"`
}

func (AssetVendorLink) TableName() string {
	return "asset_vendor_link"
}
