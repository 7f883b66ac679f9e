package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"oper-review-backend/internal/config"
	"oper-review-backend/internal/logger"
	"oper-review-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("generates an id", func(t *testing.T) {
		recorder := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := recorder.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, recorder.Body.String())
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		recorder := serve(router, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", recorder.Body.String())
	})
}

func TestLogger(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := newRouter(Logger(), RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	serve(router, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, "/ping?x=1", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "req-1", entry.Data["request_id"])

	serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRecovery(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := newRouter(Recovery(), RequestID())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:4200"}}
	router := newRouter(CORS(cfg))
	router.GET("/api/units/root", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/units/root", nil)
		req.Header.Set("Origin", "http://localhost:4200")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		recorder := serve(router, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "http://localhost:4200", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("simple request from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/units/root", nil)
		req.Header.Set("Origin", "http://localhost:4200")
		recorder := serve(router, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "http://localhost:4200", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request from another origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/units/root", nil)
		req.Header.Set("Origin", "http://evil.example")
		recorder := serve(router, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("limits after the quota", func(t *testing.T) {
		limit, err := RateLimit("2-M")
		require.NoError(t, err)
		router := newRouter(limit)
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
		assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)

		recorder := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
		assert.JSONEq(t, `{"error":"Too many requests"}`, recorder.Body.String())
	})

	t.Run("empty rate disables limiting", func(t *testing.T) {
		limit, err := RateLimit("")
		require.NoError(t, err)
		router := newRouter(limit)
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		_, err := RateLimit("lots")
		assert.Error(t, err)
	})
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	router := newRouter(Metrics(m))
	router.GET("/api/units/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	serve(router, httptest.NewRequest(http.MethodGet, "/api/units/3", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/api/units/4", nil))

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `oper_review_http_requests_total{method="GET",route="/api/units/:id",status="200"} 2`)
}
