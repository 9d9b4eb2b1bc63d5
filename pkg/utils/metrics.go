package utils

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are declared with plain prometheus (not promauto) so InitMetrics
// controls registration.
var (
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickvest_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickvest_http_response_time_seconds",
		Help:    "HTTP response time in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "path", "status"})

	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickvest_api_calls_total",
		Help: "External API calls",
	}, []string{"api", "status"})

	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickvest_api_response_time_seconds",
		Help:    "External API response time in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30, 60},
	}, []string{"api"})

	ExtractionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickvest_license_extractions_total",
		Help: "License extraction outcomes",
	}, []string{"outcome"})

	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickvest_error_total",
		Help: "Logged errors",
	}, []string{"service", "type"})

	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "quickvest_server_status",
		Help: "Server load, capacity and health",
	}, []string{"app", "metric"})
)

var metricsOnce sync.Once

// InitMetrics registers every collector with the default registry. Safe to call twice.
func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			ResponseTime,
			ApiCallCounter,
			ApiResponseTime,
			ExtractionCounter,
			ErrorCounter,
			ServerMetric,
		)
	})
}

func RecordRequest(method, path string, statusCode int, duration float64) {
	status := strconv.Itoa(statusCode)
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordApiCall records one call to an external API.
func RecordApiCall(apiName string, err error, duration float64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

func RecordExtraction(outcome string) {
	ExtractionCounter.WithLabelValues(outcome).Inc()
}

func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

func UpdateServerMetric(appName, metric string, value float64) {
	ServerMetric.WithLabelValues(appName, metric).Set(value)
}

// UpdatePrometheusMetrics publishes one ServerLoad sample.
func UpdatePrometheusMetrics(appName string, load ServerLoad) {
	UpdateServerMetric(appName, "load", load.Load)
	UpdateServerMetric(appName, "capacity", load.Capacity)
	healthValue := 0.0
	if load.IsHealthy {
		healthValue = 1.0
	}
	UpdateServerMetric(appName, "healthy", healthValue)
}
