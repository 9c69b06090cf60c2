package entity

type Product struct {
	Id        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Category  string  `gorm:"type:varchar(255)" json:"category"`
	UnitPrice float64 `gorm:"type:numeric(10,2)" json:"unit_price"`
}

func (Product) TableName() string {
	return "products"
}
