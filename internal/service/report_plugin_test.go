package service_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"testing"

	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/plugins"
	"oper-review-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leadTimeBody = `[
	{"date": "2025-09", "median": 10, "percentile_85": 28, "percentile_95": 29},
	{"date": "2025-10", "median": 7, "percentile_85": 25, "percentile_95": 40}
]`

func newPluginService() *service.ReportPluginService {
	return service.NewReportPluginService(plugins.NewDefaultCatalog())
}

func TestReportPluginService_ListPlugins(t *testing.T) {
	list := newPluginService().ListPlugins()

	require.Len(t, list, 3)
	assert.Equal(t, plugins.TeamLeadTimeID, list[0].PluginID)
	assert.Equal(t, plugins.CustomID, list[len(list)-1].PluginID)
	assert.True(t, list[len(list)-1].AllowsMultiple)
}

func TestReportPluginService_Render(t *testing.T) {
	svc := newPluginService()

	t.Run("default prompt and no rating", func(t *testing.T) {
		view, err := svc.Render(plugins.TeamLeadTimeID, &service.RenderPluginRequest{Data: json.RawMessage(leadTimeBody)})
		require.NoError(t, err)
		assert.Equal(t, plugins.TeamLeadTimeID, view.PluginID)
		assert.NotEmpty(t, view.Prompt)
		assert.Nil(t, view.Rating)
		assert.Nil(t, view.RatingLabel)
		require.NotNil(t, view.Chart)
		assert.Equal(t, []string{"2025-09", "2025-10"}, view.Chart.Labels)
	})

	t.Run("prompt override and rating", func(t *testing.T) {
		prompt := "Explain the spike"
		rating := plugins.RatingNeedsWork
		view, err := svc.Render(plugins.TeamLeadTimeID, &service.RenderPluginRequest{
			Data:   json.RawMessage(leadTimeBody),
			Prompt: &prompt,
			Rating: &rating,
		})
		require.NoError(t, err)
		assert.Equal(t, prompt, view.Prompt)
		require.NotNil(t, view.RatingLabel)
		assert.Equal(t, "Needs work", *view.RatingLabel)
	})

	t.Run("invalid rating", func(t *testing.T) {
		rating := plugins.Rating(4)
		_, err := svc.Render(plugins.TeamLeadTimeID, &service.RenderPluginRequest{
			Data:   json.RawMessage(leadTimeBody),
			Rating: &rating,
		})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("invalid data", func(t *testing.T) {
		_, err := svc.Render(plugins.WIPID, &service.RenderPluginRequest{Data: json.RawMessage(`{"nope":1}`)})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown plugin", func(t *testing.T) {
		_, err := svc.Render("burndown", &service.RenderPluginRequest{})
		assert.ErrorIs(t, err, apperrors.ErrReportPluginNotFound)
	})
}

func TestReportPluginService_Snapshot(t *testing.T) {
	svc := newPluginService()

	t.Run("chart plugin", func(t *testing.T) {
		res, err := svc.Snapshot(plugins.TeamLeadTimeID, json.RawMessage(leadTimeBody))
		require.NoError(t, err)
		assert.Equal(t, "image/png", res.ContentType)
		assert.NotEmpty(t, res.Image)
	})

	t.Run("custom plugin echoes the image", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, png.Encode(buf, image.NewGray(image.Rect(0, 0, 1, 1))))
		body, err := json.Marshal(plugins.CustomData{
			Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
		require.NoError(t, err)

		res, err := svc.Snapshot(plugins.CustomID, body)
		require.NoError(t, err)
		assert.Equal(t, buf.Bytes(), res.Image)
		assert.Equal(t, "image/png", res.ContentType)
	})

	t.Run("unknown plugin", func(t *testing.T) {
		_, err := svc.Snapshot("burndown", nil)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
