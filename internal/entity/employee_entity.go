package entity

type Employee struct {
	Id           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DepartmentId *uint     `gorm:"index" json:"department_id"`
	Designation  string    `gorm:"type:varchar(255)" json:"designation"`
	DateJoined   *DateOnly `json:"date_joined"`
}

func (Employee) TableName() string {
	return "employees"
}
