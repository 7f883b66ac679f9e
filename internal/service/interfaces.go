package service

import (
	"context"
	"encoding/json"

	"oper-review-backend/internal/plugins"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrgServiceInterface defines the interface for the org directory service
type OrgServiceInterface interface {
	GetRootUnit(ctx context.Context) (*UnitViewDto, error)
	GetUnitView(ctx context.Context, unitID uint) (*UnitViewDto, error)
	CheckRootInvariant(ctx context.Context) error
}

// ReportTemplateServiceInterface defines the interface for report template service
type ReportTemplateServiceInterface interface {
	GetTemplate(ctx context.Context, unitID uint) (*ReportTemplateDto, error)
	PutTemplate(ctx context.Context, unitID uint, req *PutReportTemplateRequest) (*ReportTemplateDto, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	ListReports(ctx context.Context, unitID uint) ([]ReportDto, error)
	CreateReport(ctx context.Context, unitID uint, req *CreateReportRequest) (*ReportDto, error)
}

// ReportPluginServiceInterface defines the interface for report plugin service
type ReportPluginServiceInterface interface {
	ListPlugins() []plugins.Descriptor
	Render(pluginID string, req *RenderPluginRequest) (*plugins.View, error)
	Snapshot(pluginID string, data json.RawMessage) (*SnapshotResult, error)
}

// HealthServiceInterface defines the interface for health service
type HealthServiceInterface interface {
	Check(ctx context.Context) error
	Ready(ctx context.Context) error
}
