package models

// Unit represents an organizational unit. Units form a tree through ParentUnitID;
// a unit without a parent is a root candidate.
type Unit struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	ManagerID    *uint  `json:"manager_id,omitempty" gorm:"index"`
	ParentUnitID *uint  `json:"parent_unit_id,omitempty" gorm:"index"`

	// Relationships
	Manager   *Employee  `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
	Children  []Unit     `json:"children,omitempty" gorm:"foreignKey:ParentUnitID;constraint:OnDelete:SET NULL"`
	Employees []Employee `json:"employees,omitempty" gorm:"many2many:unit_employee;joinForeignKey:UnitID;joinReferences:EmployeeID"`
}

// TableName returns the table name for Unit
func (Unit) TableName() string {
	return "unit"
}

// UnitEmployee is the membership join between units and employees
type UnitEmployee struct {
	UnitID     uint `json:"unit_id" gorm:"primaryKey;autoIncrement:false"`
	EmployeeID uint `json:"employee_id" gorm:"primaryKey;autoIncrement:false"`

	// Relationships
	Unit     *Unit     `json:"-" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UnitEmployee
func (UnitEmployee) TableName() string {
	return "unit_employee"
}
