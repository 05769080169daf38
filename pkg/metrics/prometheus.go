// Package metrics provides Prometheus metrics for the prayer times service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results for RecordPlaceLookup.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Domain metrics
	schedulesComputed  *prometheus.CounterVec
	scheduleFallbacks  *prometheus.CounterVec
	currentPrayer      *prometheus.CounterVec
	qiblaComputations  prometheus.Counter
	placeLookups       *prometheus.CounterVec
	computationLatency *prometheus.HistogramVec
	calendarDays       prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "salat",
		subsystem:        "api",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.schedulesComputed = auto.NewCounterVec(
		m.counterOpts("schedules_total", "Total number of prayer schedules built, by source"),
		[]string{"source"},
	)
	m.scheduleFallbacks = auto.NewCounterVec(
		m.counterOpts("schedule_fallbacks_total", "Total number of fallback schedules, by reason"),
		[]string{"reason"},
	)
	m.currentPrayer = auto.NewCounterVec(
		m.counterOpts("current_prayer_total", "Total number of current prayer selections, by prayer"),
		[]string{"prayer"},
	)
	m.qiblaComputations = auto.NewCounter(
		m.counterOpts("qibla_computations_total", "Total number of qibla bearings computed"),
	)
	m.placeLookups = auto.NewCounterVec(
		m.counterOpts("place_lookups_total", "Total number of gazetteer lookups, by result"),
		[]string{"result"},
	)
	m.computationLatency = auto.NewHistogramVec(
		m.histogramOpts("computation_latency_milliseconds", "Latency of domain computations in milliseconds", m.histogramBuckets),
		[]string{"operation"},
	)
	m.calendarDays = auto.NewHistogram(
		m.histogramOpts("calendar_days", "Number of days per calendar request", []float64{1, 7, 14, 31, 62, 93, 366}),
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", prometheus.DefBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// RecordSchedule counts a built schedule. reason is ignored for computed
// schedules.
func (m *Manager) RecordSchedule(source, reason string) {
	m.schedulesComputed.WithLabelValues(source).Inc()
	if reason != "" {
		m.scheduleFallbacks.WithLabelValues(reason).Inc()
	}
}

// RecordCurrentPrayer counts a current prayer selection.
func (m *Manager) RecordCurrentPrayer(name string) {
	m.currentPrayer.WithLabelValues(name).Inc()
}

// RecordQibla counts a qibla computation.
func (m *Manager) RecordQibla() {
	m.qiblaComputations.Inc()
}

// RecordPlaceLookup counts a gazetteer lookup.
func (m *Manager) RecordPlaceLookup(hit bool) {
	result := LookupMiss
	if hit {
		result = LookupHit
	}
	m.placeLookups.WithLabelValues(result).Inc()
}

// RecordComputationLatency records how long an operation took in milliseconds.
func (m *Manager) RecordComputationLatency(operation string, latencyMs float64) {
	m.computationLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordCalendarDays records the length of a calendar request.
func (m *Manager) RecordCalendarDays(days int) {
	m.calendarDays.Observe(float64(days))
}

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func (m *Manager) RecordErrorByType(errorType, severity string) {
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	m.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	m.systemGCPauseTime.Observe(pauseMs)
}

// Package level helpers on the global manager.

func RecordSchedule(source, reason string)    { globalManager.RecordSchedule(source, reason) }
func RecordCurrentPrayer(name string)         { globalManager.RecordCurrentPrayer(name) }
func RecordQibla()                            { globalManager.RecordQibla() }
func RecordPlaceLookup(hit bool)              { globalManager.RecordPlaceLookup(hit) }
func RecordCalendarDays(days int)             { globalManager.RecordCalendarDays(days) }
func RecordErrorByType(errorType, sev string) { globalManager.RecordErrorByType(errorType, sev) }

func RecordComputationLatency(operation string, latencyMs float64) {
	globalManager.RecordComputationLatency(operation, latencyMs)
}

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, duration)
}

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

func UpdateSystemMemoryUsage(bytes uint64)    { globalManager.UpdateSystemMemoryUsage(bytes) }
func UpdateSystemGoroutineCount(count int)    { globalManager.UpdateSystemGoroutineCount(count) }
func RecordSystemGCPauseTime(pauseMs float64) { globalManager.RecordSystemGCPauseTime(pauseMs) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
