package models

// Employee represents a person in the org directory
type Employee struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Position *string `json:"position,omitempty" gorm:"size:255" validate:"omitempty,max=255"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employee"
}
