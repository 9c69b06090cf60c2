package entity

type Department struct {
	Id     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	HeadId *uint  `gorm:"index" json:"head_id"`
}

func (Department) TableName() string {
	return "departments"
}
