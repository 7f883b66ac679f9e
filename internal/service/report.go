package service

import (
	"context"
	"fmt"
	"time"

	"oper-review-backend/internal/database/models"
	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ReportService handles business logic for dated unit reports
type ReportService struct {
	repo      repository.ReportRepositoryInterface
	unitRepo  repository.UnitRepositoryInterface
	validator *validator.Validate
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface, unitRepo repository.UnitRepositoryInterface, validator *validator.Validate) *ReportService {
	return &ReportService{
		repo:      repo,
		unitRepo:  unitRepo,
		validator: validator,
	}
}

// CreateReportRequest represents the request to create a report
type CreateReportRequest struct {
	ReportDate string `json:"reportDate" validate:"required,datetime=2006-01-02" example:"2025-01-31"`
}

// ReportDto represents a report
type ReportDto struct {
	ID         uint      `json:"id" example:"1"`
	UnitID     uint      `json:"unitId" example:"3"`
	ReportDate string    `json:"reportDate" example:"2025-01-31"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *ReportService) ensureUnit(ctx context.Context, unitID uint) error {
	exists, err := s.unitRepo.Exists(ctx, unitID)
	if err != nil {
		return fmt.Errorf("failed to check unit: %w", err)
	}
	if !exists {
		return apperrors.ErrUnitNotFound
	}
	return nil
}

// ListReports returns the unit's reports, newest date first
func (s *ReportService) ListReports(ctx context.Context, unitID uint) ([]ReportDto, error) {
	if err := s.ensureUnit(ctx, unitID); err != nil {
		return nil, err
	}

	reports, err := s.repo.GetByUnitID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	out := make([]ReportDto, 0, len(reports))
	for i := range reports {
		out = append(out, toReportDto(&reports[i]))
	}
	return out, nil
}

// CreateReport creates a report for the unit and date
func (s *ReportService) CreateReport(ctx context.Context, unitID uint, req *CreateReportRequest) (*ReportDto, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", validationError(err))
	}
	if err := s.ensureUnit(ctx, unitID); err != nil {
		return nil, err
	}

	report := &models.Report{
		UnitID:     unitID,
		ReportDate: req.ReportDate,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrReportExists
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	dto := toReportDto(report)
	return &dto, nil
}

func toReportDto(r *models.Report) ReportDto {
	return ReportDto{
		ID:         r.ID,
		UnitID:     r.UnitID,
		ReportDate: r.ReportDate,
		CreatedAt:  r.CreatedAt,
	}
}
