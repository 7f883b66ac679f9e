package service

import (
	"encoding/json"
	"fmt"

	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/plugins"

	"github.com/gabriel-vasile/mimetype"
)

// ReportPluginService exposes the plugin catalog and its rendering capabilities
type ReportPluginService struct {
	catalog *plugins.Catalog
}

// NewReportPluginService creates a new report plugin service
func NewReportPluginService(catalog *plugins.Catalog) *ReportPluginService {
	return &ReportPluginService{
		catalog: catalog,
	}
}

// RenderPluginRequest represents the request to render a plugin block
type RenderPluginRequest struct {
	Data   json.RawMessage `json:"data" swaggertype:"object"`
	Prompt *string         `json:"prompt"`
	Rating *plugins.Rating `json:"rating" swaggertype:"integer" example:"1"`
}

// SnapshotPluginRequest represents the request to snapshot a plugin visualization
type SnapshotPluginRequest struct {
	Data json.RawMessage `json:"data" swaggertype:"object"`
}

// SnapshotResult is a rendered image with its detected content type
type SnapshotResult struct {
	Image       []byte
	ContentType string
}

// ListPlugins returns every plugin descriptor
func (s *ReportPluginService) ListPlugins() []plugins.Descriptor {
	return s.catalog.List()
}

func (s *ReportPluginService) lookup(pluginID string) (plugins.Variant, error) {
	variant, ok := s.catalog.Lookup(pluginID)
	if !ok {
		return nil, apperrors.ErrReportPluginNotFound
	}
	return variant, nil
}

// Render resolves a plugin block: its visualization, effective prompt and rating
func (s *ReportPluginService) Render(pluginID string, req *RenderPluginRequest) (*plugins.View, error) {
	variant, err := s.lookup(pluginID)
	if err != nil {
		return nil, err
	}
	if req.Rating != nil && !req.Rating.Valid() {
		return nil, apperrors.NewValidationError("rating", "must be 1, 2 or 3")
	}

	vis, err := variant.Render(req.Data)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to render plugin %s: %w", pluginID, err)
	}

	return plugins.NewView(variant.Descriptor(), vis, req.Prompt, req.Rating), nil
}

// Snapshot renders the plugin visualization into an image
func (s *ReportPluginService) Snapshot(pluginID string, data json.RawMessage) (*SnapshotResult, error) {
	variant, err := s.lookup(pluginID)
	if err != nil {
		return nil, err
	}

	img, err := variant.Snapshot(data)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to snapshot plugin %s: %w", pluginID, err)
	}

	return &SnapshotResult{
		Image:       img,
		ContentType: mimetype.Detect(img).String(),
	}, nil
}
