package models

import "time"

// Report is a dated report instance for a unit
type Report struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UnitID     uint      `json:"unit_id" gorm:"not null;uniqueIndex:idx_report_unit_date"`
	ReportDate string    `json:"report_date" gorm:"size:10;not null;uniqueIndex:idx_report_unit_date"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "report"
}
