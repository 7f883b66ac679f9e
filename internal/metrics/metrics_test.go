package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/units/:id", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/units/:id", http.StatusOK, 7*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/units/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestObserveTemplateSave(t *testing.T) {
	m := New()

	m.ObserveTemplateSave(3, nil)
	m.ObserveTemplateSave(0, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.templateSaves.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.templateSaves.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.ObserveTemplateSave(1, nil)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveTemplateSave(2, nil)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "oper_review_report_template_saves_total")
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}
