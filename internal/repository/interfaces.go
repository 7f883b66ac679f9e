package repository

import (
	"context"

	"oper-review-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UnitRepositoryInterface defines the interface for unit repository operations
type UnitRepositoryInterface interface {
	GetView(ctx context.Context, id uint) (*models.Unit, error)
	GetRootView(ctx context.Context) (*models.Unit, error)
	ListRootIDs(ctx context.Context) ([]uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// ReportTemplateRepositoryInterface defines the interface for report template repository operations
type ReportTemplateRepositoryInterface interface {
	GetByUnitID(ctx context.Context, unitID uint) (*models.ReportTemplate, error)
	Replace(ctx context.Context, unitID uint, plugins []models.ReportTemplatePlugin) (*models.ReportTemplate, error)
}

// ReportRepositoryInterface defines the interface for report repository operations
type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *models.Report) error
	GetByUnitID(ctx context.Context, unitID uint) ([]models.Report, error)
}

// HealthCheckRepositoryInterface defines the interface for health check repository operations
type HealthCheckRepositoryInterface interface {
	Record(ctx context.Context, checkedAt string) error
	Ping(ctx context.Context) error
}
