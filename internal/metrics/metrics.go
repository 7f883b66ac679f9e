// Package metrics exposes Prometheus collectors for the HTTP API and the
// report template store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "oper_review"

// Metrics owns a private registry and the service's collectors
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	templateSaves   *prometheus.CounterVec
	templatePlugins prometheus.Histogram
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests broken down by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "latency_seconds",
			Help:      "Latency distribution for HTTP requests.",
			Buckets: []float64{
				0.001, 0.002, 0.005,
				0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5, 10,
			},
		}, []string{"method", "route"}),
		templateSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report_template",
			Name:      "saves_total",
			Help:      "Total number of report template saves broken down by result.",
		}, []string{"result"}),
		templatePlugins: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "report_template",
			Name:      "plugins",
			Help:      "Number of plugins in saved report templates.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveTemplateSave records a report template save attempt
func (m *Metrics) ObserveTemplateSave(pluginCount int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.templateSaves.WithLabelValues("error").Inc()
		return
	}
	m.templateSaves.WithLabelValues("ok").Inc()
	m.templatePlugins.Observe(float64(pluginCount))
}
