package handlers

import (
	"errors"
	"net/http"
	"testing"

	"oper-review-backend/internal/mocks"
	"oper-review-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHealthHandler(t *testing.T) (*mocks.MockHealthServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockHealthServiceInterface(ctrl)
	handler := NewHealthHandler(svc)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return svc, httpSuite
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		svc, httpSuite := setupHealthHandler(t)
		svc.EXPECT().Check(gomock.Any()).Return(nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"status":"ok","service":"oper-review-backend"}`, recorder.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		svc, httpSuite := setupHealthHandler(t)
		svc.EXPECT().Check(gomock.Any()).Return(errors.New("database is locked"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, ServiceName, response.Service)
		assert.Equal(t, "database is locked", response.Error)
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		svc, httpSuite := setupHealthHandler(t)
		svc.EXPECT().Ready(gomock.Any()).Return(nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &response)
		assert.Equal(t, true, response["ready"])
	})

	t.Run("not ready", func(t *testing.T) {
		svc, httpSuite := setupHealthHandler(t)
		svc.EXPECT().Ready(gomock.Any()).Return(errors.New("refused"))

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &response)
		assert.Equal(t, false, response["ready"])
	})
}

func TestHealthHandler_Live(t *testing.T) {
	_, httpSuite := setupHealthHandler(t)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}
