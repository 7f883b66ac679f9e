package repository

import (
	"context"

	"oper-review-backend/internal/database/models"

	"gorm.io/gorm"
)

// HealthCheckRepository handles database operations for health checks
type HealthCheckRepository struct {
	db *gorm.DB
}

// NewHealthCheckRepository creates a new health check repository
func NewHealthCheckRepository(db *gorm.DB) *HealthCheckRepository {
	return &HealthCheckRepository{db: db}
}

// Record appends a health row
func (r *HealthCheckRepository) Record(ctx context.Context, checkedAt string) error {
	return r.db.WithContext(ctx).Create(&models.HealthCheck{CheckedAt: checkedAt}).Error
}

// Ping checks the underlying connection
func (r *HealthCheckRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
