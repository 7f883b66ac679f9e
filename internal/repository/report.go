package repository

import (
	"context"

	"oper-review-backend/internal/database/models"

	"gorm.io/gorm"
)

// ReportRepository handles database operations for reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create creates a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByUnitID retrieves a unit's reports, newest date first
func (r *ReportRepository) GetByUnitID(ctx context.Context, unitID uint) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("report_date DESC").
		Order("id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
