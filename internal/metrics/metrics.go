// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface used by the render service and middleware
type Recorder interface {
	RecordRender(section string, duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector records metrics into Prometheus
type Collector struct {
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	httpStatus     *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_section_renders_total",
			Help: "Number of section renders, by section.",
		}, []string{"section"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_render_duration_seconds",
			Help:    "Time spent rendering markup, by section.",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		}, []string{"section"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Number of HTTP responses, by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(c.renders, c.renderDuration, c.httpStatus)

	return c
}

// RecordRender counts one render of section and observes its duration
func (c *Collector) RecordRender(section string, duration time.Duration) {
	c.renders.WithLabelValues(section).Inc()
	c.renderDuration.WithLabelValues(section).Observe(duration.Seconds())
}

// RecordHTTPStatus counts one response with the given status code
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Nop discards every measurement
type Nop struct{}

func (Nop) RecordRender(string, time.Duration) {}
func (Nop) RecordHTTPStatus(int) {}

// Handler returns the Prometheus scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
