package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	feedRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_refresh_total",
			Help: "Total number of feed refresh attempts.",
		},
		[]string{"result"},
	)
	feedRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_refresh_duration_seconds",
			Help:    "Histogram of feed refresh durations.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
		},
	)
	feedProductsProcessed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_products_processed",
			Help: "Number of visible products processed by the last refresh.",
		},
	)
	feedRecordsEmitted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_records_emitted",
			Help: "Number of canonical records emitted by the last refresh.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(feedRefreshTotal)
	prometheus.MustRegister(feedRefreshDuration)
	prometheus.MustRegister(feedProductsProcessed)
	prometheus.MustRegister(feedRecordsEmitted)
}

// RecordRequest records metrics for one HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordRefresh records the outcome of one feed refresh cycle.
func RecordRefresh(err error, duration time.Duration, products, records int) {
	result := "success"
	if err != nil {
		result = "error"
	}
	feedRefreshTotal.WithLabelValues(result).Inc()
	feedRefreshDuration.Observe(duration.Seconds())
	if err == nil {
		feedProductsProcessed.Set(float64(products))
		feedRecordsEmitted.Set(float64(records))
	}
}

func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler returns the HTTP handler exporting Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
