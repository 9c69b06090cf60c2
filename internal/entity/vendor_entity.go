package entity

type Vendor struct {
	Id            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Email         string `gorm:"type:varchar(255);not null" json:"email"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
}

func (Vendor) TableName() string {
	return "vendors"
}
