package service

import (
	"context"
	"errors"
	"fmt"

	"oper-review-backend/internal/database/models"
	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/logger"
	"oper-review-backend/internal/metrics"
	"oper-review-backend/internal/plugins"
	"oper-review-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ReportTemplateService handles business logic for report templates
type ReportTemplateService struct {
	repo      repository.ReportTemplateRepositoryInterface
	validator *validator.Validate
	catalog   *plugins.Catalog
	strict    bool
	metrics   *metrics.Metrics
}

// ReportTemplateOption configures a ReportTemplateService
type ReportTemplateOption func(*ReportTemplateService)

// WithStrictPlugins rejects unknown plugin ids and repeated single-use plugins on save
func WithStrictPlugins(catalog *plugins.Catalog) ReportTemplateOption {
	return func(s *ReportTemplateService) {
		s.catalog = catalog
		s.strict = catalog != nil
	}
}

// WithTemplateMetrics records save outcomes
func WithTemplateMetrics(m *metrics.Metrics) ReportTemplateOption {
	return func(s *ReportTemplateService) {
		s.metrics = m
	}
}

// NewReportTemplateService creates a new report template service
func NewReportTemplateService(repo repository.ReportTemplateRepositoryInterface, validator *validator.Validate, opts ...ReportTemplateOption) *ReportTemplateService {
	s := &ReportTemplateService{
		repo:      repo,
		validator: validator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportTemplatePluginDto represents one plugin entry of a template
type ReportTemplatePluginDto struct {
	PluginID    string  `json:"pluginId" validate:"max=64" example:"team-lead-time"`
	CustomTitle *string `json:"customTitle" validate:"omitempty,max=255" example:"Q1"`
	SortOrder   int     `json:"sortOrder" example:"0"`
}

// ReportTemplateDto represents a unit's report template
type ReportTemplateDto struct {
	ID      uint                      `json:"id" example:"1"`
	UnitID  uint                      `json:"unitId" example:"3"`
	Plugins []ReportTemplatePluginDto `json:"plugins"`
}

// PutReportTemplateRequest represents the request to replace a unit's template.
// Plugins must be present but may be empty.
type PutReportTemplateRequest struct {
	Plugins []ReportTemplatePluginDto `json:"plugins" validate:"required,dive"`
}

// GetTemplate returns the unit's template. A missing unit and a unit without a
// template are both reported as ErrReportTemplateNotFound.
func (s *ReportTemplateService) GetTemplate(ctx context.Context, unitID uint) (*ReportTemplateDto, error) {
	template, err := s.repo.GetByUnitID(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get report template: %w", err)
	}
	return toReportTemplateDto(template), nil
}

// PutTemplate replaces the unit's plugin list, creating the template on first save
func (s *ReportTemplateService) PutTemplate(ctx context.Context, unitID uint, req *PutReportTemplateRequest) (*ReportTemplateDto, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"unitId":  unitID,
		"plugins": len(req.Plugins),
	})

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", validationError(err))
	}
	if s.strict {
		if err := s.checkCatalog(req.Plugins); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}

	rows := make([]models.ReportTemplatePlugin, len(req.Plugins))
	for i, p := range req.Plugins {
		rows[i] = models.ReportTemplatePlugin{
			PluginID:    p.PluginID,
			CustomTitle: p.CustomTitle,
			SortOrder:   p.SortOrder,
		}
	}

	template, err := s.repo.Replace(ctx, unitID, rows)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		s.metrics.ObserveTemplateSave(len(rows), err)
		log.Errorf("Failed to save report template: %v", err)
		return nil, fmt.Errorf("failed to save report template: %w", err)
	}
	s.metrics.ObserveTemplateSave(len(rows), nil)
	log.Debug("Report template saved")

	return toReportTemplateDto(template), nil
}

// checkCatalog rejects unknown plugins and repeats of plugins that allow a single instance
func (s *ReportTemplateService) checkCatalog(entries []ReportTemplatePluginDto) error {
	seen := make(map[string]bool, len(entries))
	for i, p := range entries {
		field := fmt.Sprintf("plugins[%d].pluginId", i)
		if !s.catalog.Has(p.PluginID) {
			return apperrors.NewValidationError(field, fmt.Sprintf("unknown plugin %q", p.PluginID))
		}
		if seen[p.PluginID] && !s.catalog.AllowsMultiple(p.PluginID) {
			return apperrors.NewValidationError(field, fmt.Sprintf("plugin %q may appear only once", p.PluginID))
		}
		seen[p.PluginID] = true
	}
	return nil
}

func toReportTemplateDto(t *models.ReportTemplate) *ReportTemplateDto {
	dto := &ReportTemplateDto{
		ID:      t.ID,
		UnitID:  t.UnitID,
		Plugins: make([]ReportTemplatePluginDto, 0, len(t.Plugins)),
	}
	for _, p := range t.Plugins {
		dto.Plugins = append(dto.Plugins, ReportTemplatePluginDto{
			PluginID:    p.PluginID,
			CustomTitle: p.CustomTitle,
			SortOrder:   p.SortOrder,
		})
	}
	return dto
}
