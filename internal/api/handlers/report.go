package handlers

import (
	"net/http"

	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for unit reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// ListReports handles GET /api/units/:id/reports
// @Summary List a unit's reports
// @Description List the unit's reports, newest report date first
// @Tags reports
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {array} service.ReportDto "Reports"
// @Failure 400 {object} ErrorResponse "Invalid unit id"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/{id}/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	unitID, ok := parseUnitID(c, apperrors.ErrUnitNotFound)
	if !ok {
		return
	}

	reports, err := h.service.ListReports(c.Request.Context(), unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// CreateReport handles POST /api/units/:id/reports
// @Summary Create a report
// @Description Create a dated report for the unit. Only one report per unit and date is allowed.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Param report body service.CreateReportRequest true "Report date"
// @Success 201 {object} service.ReportDto "Created report"
// @Failure 400 {object} ErrorResponse "Invalid unit id or body"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 409 {object} ErrorResponse "Report already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/{id}/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	unitID, ok := parseUnitID(c, apperrors.ErrUnitNotFound)
	if !ok {
		return
	}

	var req service.CreateReportRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.service.CreateReport(c.Request.Context(), unitID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}
