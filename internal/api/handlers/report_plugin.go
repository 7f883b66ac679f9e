package handlers

import (
	"net/http"

	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportPluginHandler handles HTTP requests for the report plugin catalog
type ReportPluginHandler struct {
	service service.ReportPluginServiceInterface
}

// NewReportPluginHandler creates a new report plugin handler
func NewReportPluginHandler(service service.ReportPluginServiceInterface) *ReportPluginHandler {
	return &ReportPluginHandler{service: service}
}

// ListPlugins handles GET /api/report-plugins
// @Summary List report plugins
// @Description List every plugin a report template may reference, grouped by report section
// @Tags report-plugins
// @Produce json
// @Success 200 {array} plugins.Descriptor "Plugins"
// @Router /report-plugins [get]
func (h *ReportPluginHandler) ListPlugins(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListPlugins())
}

// RenderPlugin handles POST /api/report-plugins/:pluginId/render
// @Summary Render a plugin block
// @Description Build the plugin's visualization from its data and resolve the prompt and rating
// @Tags report-plugins
// @Accept json
// @Produce json
// @Param pluginId path string true "Plugin ID"
// @Param request body service.RenderPluginRequest true "Plugin data"
// @Success 200 {object} plugins.View "Rendered block"
// @Failure 400 {object} ErrorResponse "Invalid body or data"
// @Failure 404 {object} ErrorResponse "Plugin not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /report-plugins/{pluginId}/render [post]
func (h *ReportPluginHandler) RenderPlugin(c *gin.Context) {
	var req service.RenderPluginRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.service.Render(c.Param("pluginId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SnapshotPlugin handles POST /api/report-plugins/:pluginId/snapshot
// @Summary Snapshot a plugin visualization
// @Description Render the plugin's visualization into an image
// @Tags report-plugins
// @Accept json
// @Produce png
// @Param pluginId path string true "Plugin ID"
// @Param request body service.SnapshotPluginRequest true "Plugin data"
// @Success 200 {file} binary "Image"
// @Failure 400 {object} ErrorResponse "Invalid body or data"
// @Failure 404 {object} ErrorResponse "Plugin not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /report-plugins/{pluginId}/snapshot [post]
func (h *ReportPluginHandler) SnapshotPlugin(c *gin.Context) {
	var req service.SnapshotPluginRequest
	if !bindJSON(c, &req) {
		return
	}

	snapshot, err := h.service.Snapshot(c.Param("pluginId"), req.Data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, snapshot.ContentType, snapshot.Image)
}
