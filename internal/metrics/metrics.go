// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers request-level and batch-delete metrics.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	requestDuration prometheus.Histogram
	batchDeleted    prometheus.Counter
	batchFailed     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todocloud_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "todocloud_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		batchDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todocloud_batch_delete_deleted_total",
			Help: "Ids successfully removed by batch delete",
		}),
		batchFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todocloud_batch_delete_failed_total",
			Help: "Ids reported failed by batch delete",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.requestDuration,
		c.batchDeleted,
		c.batchFailed,
	)

	return c
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordBatchDelete records the outcome split of one batch-delete call.
func (c *Collector) RecordBatchDelete(deleted, failed int) {
	c.batchDeleted.Add(float64(deleted))
	c.batchFailed.Add(float64(failed))
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
