package models

// HealthCheck records a successful database round trip from the health endpoint
type HealthCheck struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CheckedAt string `json:"checked_at" gorm:"size:64;not null"`
}

// TableName returns the table name for HealthCheck
func (HealthCheck) TableName() string {
	return "health"
}
