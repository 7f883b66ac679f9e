package handlers

import (
	"net/http"

	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportTemplateHandler handles HTTP requests for unit report templates
type ReportTemplateHandler struct {
	service service.ReportTemplateServiceInterface
}

// NewReportTemplateHandler creates a new report template handler
func NewReportTemplateHandler(service service.ReportTemplateServiceInterface) *ReportTemplateHandler {
	return &ReportTemplateHandler{service: service}
}

// GetReportTemplate handles GET /api/units/:id/report-template
// @Summary Get a unit's report template
// @Description Get the ordered plugin list of the unit's report template. A missing unit is also reported as 404.
// @Tags report-templates
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} service.ReportTemplateDto "Report template"
// @Failure 400 {object} ErrorResponse "Invalid unit id"
// @Failure 404 {object} ErrorResponse "Report template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/{id}/report-template [get]
func (h *ReportTemplateHandler) GetReportTemplate(c *gin.Context) {
	unitID, ok := parseUnitID(c, apperrors.ErrReportTemplateNotFound)
	if !ok {
		return
	}

	template, err := h.service.GetTemplate(c.Request.Context(), unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// PutReportTemplate handles PUT /api/units/:id/report-template
// @Summary Replace a unit's report template
// @Description Replace the unit's plugin list, creating the template on first save
// @Tags report-templates
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Param template body service.PutReportTemplateRequest true "Plugin list"
// @Success 200 {object} service.ReportTemplateDto "Saved report template"
// @Failure 400 {object} ErrorResponse "Invalid unit id or body"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/{id}/report-template [put]
func (h *ReportTemplateHandler) PutReportTemplate(c *gin.Context) {
	unitID, ok := parseUnitID(c, apperrors.ErrUnitNotFound)
	if !ok {
		return
	}

	var req service.PutReportTemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	template, err := h.service.PutTemplate(c.Request.Context(), unitID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}
