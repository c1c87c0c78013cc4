// Package metrics provides Prometheus metrics collection and exposition
// for the PoliGap analysis services. It tracks HTTP traffic, benchmarking
// runs, entity extraction, cache effectiveness, and summarizer calls.
package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector manages Prometheus metric registration and recording.
type Collector struct {
	registry  *prometheus.Registry
	namespace string

	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec

	mu sync.RWMutex
}

// CollectorConfig defines metrics collector configuration.
type CollectorConfig struct {
	// Namespace prefixes all metric names.
	Namespace string

	// EnableGoMetrics registers the default Go runtime collector.
	EnableGoMetrics bool

	// EnableProcessMetrics registers the process collector.
	EnableProcessMetrics bool

	// Registry overrides the default private registry.
	Registry *prometheus.Registry
}

// scoreBuckets covers the 0..100 compliance score range.
var scoreBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// NewCollector creates a metrics collector with all core metrics registered.
func NewCollector(cfg CollectorConfig) *Collector {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.EnableGoMetrics {
		registry.MustRegister(prometheus.NewGoCollector())
	}
	if cfg.EnableProcessMetrics {
		registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "poligap"
	}

	c := &Collector{
		registry:   registry,
		namespace:  cfg.Namespace,
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}

	c.registerCoreMetrics()
	return c
}

func (c *Collector) registerCoreMetrics() {
	// HTTP metrics
	c.RegisterCounter("http_requests_total", "Total number of HTTP requests", []string{"method", "path", "status"})
	c.RegisterHistogram("http_request_duration_seconds", "HTTP request duration in seconds", []string{"method", "path"}, prometheus.DefBuckets)
	c.RegisterCounter("http_request_errors_total", "Total number of HTTP request errors", []string{"method", "path", "error_type"})

	// Benchmarking metrics
	c.RegisterCounter("analyses_total", "Total number of benchmarking analyses performed", []string{"industry", "status"})
	c.RegisterHistogram("analysis_duration_seconds", "Benchmarking analysis duration in seconds", []string{"industry"}, prometheus.DefBuckets)
	c.RegisterHistogram("analysis_aggregate_score", "Aggregate compliance score per analysis", []string{"industry"}, scoreBuckets)
	c.RegisterHistogram("framework_score", "Per-framework compliance score", []string{"framework"}, scoreBuckets)
	c.RegisterCounter("analysis_warnings_total", "Total analysis warnings emitted", []string{"code"})

	// Extraction metrics
	c.RegisterCounter("extractions_total", "Total number of entity extraction runs", []string{"status"})
	c.RegisterHistogram("extraction_duration_seconds", "Entity extraction duration in seconds", []string{}, prometheus.DefBuckets)
	c.RegisterHistogram("extraction_entities_count", "Entities found per extraction run", []string{"category"},
		[]float64{0, 1, 2, 5, 10, 20, 50, 100})

	// Suggestion metrics
	c.RegisterCounter("suggestions_total", "Total number of framework suggestion runs", []string{"status"})
	c.RegisterCounter("suggested_frameworks_total", "Total framework suggestions emitted", []string{"framework"})

	// Cache metrics
	c.RegisterCounter("cache_hits_total", "Total number of cache hits", []string{"cache_name"})
	c.RegisterCounter("cache_misses_total", "Total number of cache misses", []string{"cache_name"})
	c.RegisterCounter("cache_errors_total", "Total cache operation errors", []string{"cache_name", "operation"})

	// Repository metrics
	c.RegisterCounter("db_queries_total", "Total number of database queries", []string{"operation"})
	c.RegisterHistogram("db_query_duration_seconds", "Database query duration in seconds", []string{"operation"}, prometheus.DefBuckets)
	c.RegisterCounter("db_query_errors_total", "Total database query errors", []string{"operation"})

	// Summarizer metrics
	c.RegisterCounter("summarizer_requests_total", "Total summarizer requests", []string{"status"})
	c.RegisterHistogram("summarizer_duration_seconds", "Summarizer request duration in seconds", []string{}, prometheus.DefBuckets)
}

// RegisterCounter registers a new counter metric. Repeat registrations are ignored.
func (c *Collector) RegisterCounter(name, help string, labels []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.counters[name]; exists {
		return
	}
	c.counters[name] = promauto.With(c.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: c.namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// IncrementCounter increments a counter by 1.
func (c *Collector) IncrementCounter(name string, labels prometheus.Labels) {
	c.mu.RLock()
	counter, exists := c.counters[name]
	c.mu.RUnlock()

	if !exists {
		return
	}
	counter.With(labels).Inc()
}

// RegisterGauge registers a new gauge metric.
func (c *Collector) RegisterGauge(name, help string, labels []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.gauges[name]; exists {
		return
	}
	c.gauges[name] = promauto.With(c.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: c.namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// SetGauge sets a gauge value.
func (c *Collector) SetGauge(name string, value float64, labels prometheus.Labels) {
	c.mu.RLock()
	gauge, exists := c.gauges[name]
	c.mu.RUnlock()

	if !exists {
		return
	}
	gauge.With(labels).Set(value)
}

// RegisterHistogram registers a new histogram metric.
func (c *Collector) RegisterHistogram(name, help string, labels []string, buckets []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.histograms[name]; exists {
		return
	}
	c.histograms[name] = promauto.With(c.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: c.namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64, labels prometheus.Labels) {
	c.mu.RLock()
	histogram, exists := c.histograms[name]
	c.mu.RUnlock()

	if !exists {
		return
	}
	histogram.With(labels).Observe(value)
}

// ObserveDuration records the elapsed time since start in a histogram.
func (c *Collector) ObserveDuration(name string, start time.Time, labels prometheus.Labels) {
	c.ObserveHistogram(name, time.Since(start).Seconds(), labels)
}

// Handler returns an HTTP handler for metrics exposition.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ServeHTTP implements http.Handler.
func (c *Collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.Handler().ServeHTTP(w, r)
}

// RecordHTTPRequest records request count, latency, and error class for one call.
func (c *Collector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	c.IncrementCounter("http_requests_total", prometheus.Labels{
		"method": method,
		"path":   path,
		"status": fmt.Sprintf("%d", statusCode),
	})
	c.ObserveHistogram("http_request_duration_seconds", duration.Seconds(), prometheus.Labels{
		"method": method,
		"path":   path,
	})

	if statusCode >= 400 {
		errorType := "client_error"
		if statusCode >= 500 {
			errorType = "server_error"
		}
		c.IncrementCounter("http_request_errors_total", prometheus.Labels{
			"method":     method,
			"path":       path,
			"error_type": errorType,
		})
	}
}

// RecordAnalysis records a completed benchmarking run.
func (c *Collector) RecordAnalysis(industry string, aggregateScore int, warningCodes []string, duration time.Duration) {
	c.IncrementCounter("analyses_total", prometheus.Labels{"industry": industry, "status": "success"})
	c.ObserveHistogram("analysis_duration_seconds", duration.Seconds(), prometheus.Labels{"industry": industry})
	c.ObserveHistogram("analysis_aggregate_score", float64(aggregateScore), prometheus.Labels{"industry": industry})
	for _, code := range warningCodes {
		c.IncrementCounter("analysis_warnings_total", prometheus.Labels{"code": code})
	}
}

// RecordFrameworkScore records a single framework score observation.
func (c *Collector) RecordFrameworkScore(framework string, score int) {
	c.ObserveHistogram("framework_score", float64(score), prometheus.Labels{"framework": framework})
}

// RecordExtraction records a completed entity extraction run.
func (c *Collector) RecordExtraction(duration time.Duration, entityCounts map[string]int) {
	c.IncrementCounter("extractions_total", prometheus.Labels{"status": "success"})
	c.ObserveHistogram("extraction_duration_seconds", duration.Seconds(), prometheus.Labels{})
	for category, count := range entityCounts {
		c.ObserveHistogram("extraction_entities_count", float64(count), prometheus.Labels{"category": category})
	}
}

// RecordSuggestion records a framework suggestion run and the frameworks it produced.
func (c *Collector) RecordSuggestion(frameworks []string) {
	c.IncrementCounter("suggestions_total", prometheus.Labels{"status": "success"})
	for _, fw := range frameworks {
		c.IncrementCounter("suggested_frameworks_total", prometheus.Labels{"framework": fw})
	}
}

// RecordCacheHit records a cache hit.
func (c *Collector) RecordCacheHit(cacheName string) {
	c.IncrementCounter("cache_hits_total", prometheus.Labels{"cache_name": cacheName})
}

// RecordCacheMiss records a cache miss.
func (c *Collector) RecordCacheMiss(cacheName string) {
	c.IncrementCounter("cache_misses_total", prometheus.Labels{"cache_name": cacheName})
}

// RecordCacheError records a failed cache operation.
func (c *Collector) RecordCacheError(cacheName, operation string) {
	c.IncrementCounter("cache_errors_total", prometheus.Labels{"cache_name": cacheName, "operation": operation})
}

// RecordDBQuery records a database query and its duration.
func (c *Collector) RecordDBQuery(operation string, duration time.Duration, err error) {
	c.IncrementCounter("db_queries_total", prometheus.Labels{"operation": operation})
	c.ObserveHistogram("db_query_duration_seconds", duration.Seconds(), prometheus.Labels{"operation": operation})
	if err != nil {
		c.IncrementCounter("db_query_errors_total", prometheus.Labels{"operation": operation})
	}
}

// RecordSummarizerRequest records a summarizer call outcome.
func (c *Collector) RecordSummarizerRequest(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.IncrementCounter("summarizer_requests_total", prometheus.Labels{"status": status})
	c.ObserveHistogram("summarizer_duration_seconds", duration.Seconds(), prometheus.Labels{})
}
