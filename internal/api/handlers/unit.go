package handlers

import (
	"net/http"

	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UnitHandler handles HTTP requests for the unit hierarchy
type UnitHandler struct {
	service service.OrgServiceInterface
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(service service.OrgServiceInterface) *UnitHandler {
	return &UnitHandler{service: service}
}

// GetRootUnit handles GET /api/units/root
// @Summary Get the root unit
// @Description Get the unit without a parent together with its manager, direct children and employees
// @Tags units
// @Produce json
// @Success 200 {object} service.UnitViewDto "Root unit"
// @Failure 404 {object} ErrorResponse "No root unit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/root [get]
func (h *UnitHandler) GetRootUnit(c *gin.Context) {
	view, err := h.service.GetRootUnit(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetUnit handles GET /api/units/:id
// @Summary Get unit by ID
// @Description Get a unit together with its manager, direct children and employees
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} service.UnitViewDto "Unit"
// @Failure 400 {object} ErrorResponse "Invalid unit id"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, ok := parseUnitID(c, apperrors.ErrUnitNotFound)
	if !ok {
		return
	}

	view, err := h.service.GetUnitView(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
