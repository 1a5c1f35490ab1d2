// Package metrics provides Prometheus metrics for the image catalog
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the catalog
type Metrics struct {
	// Document I/O metrics
	DocumentOperationsTotal   *prometheus.CounterVec
	DocumentOperationDuration *prometheus.HistogramVec

	// Dataset cache metrics
	CacheLookupsTotal *prometheus.CounterVec

	// Configuration metrics
	ConfigLookupsTotal *prometheus.CounterVec

	// Command metrics
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec

	// Process metrics
	StartTime        time.Time
	LastRunTimestamp prometheus.Gauge
}

// NewMetrics creates all metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		StartTime: time.Now(),
	}

	m.DocumentOperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imagecatalog_document_operations_total",
			Help: "Total number of metadata document operations",
		},
		[]string{"operation", "status"},
	)

	m.DocumentOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "imagecatalog_document_operation_duration_seconds",
			Help:    "Duration of metadata document operations in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	m.CacheLookupsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imagecatalog_dataset_cache_lookups_total",
			Help: "Total number of dataset cache lookups by result",
		},
		[]string{"result"},
	)

	m.ConfigLookupsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imagecatalog_config_lookups_total",
			Help: "Total number of configuration key lookups",
		},
		[]string{"status"},
	)

	m.CommandsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imagecatalog_commands_total",
			Help: "Total number of CLI commands by outcome",
		},
		[]string{"command", "status"},
	)

	m.CommandDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "imagecatalog_command_duration_seconds",
			Help:    "Wall-clock duration of CLI commands in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	m.LastRunTimestamp = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "imagecatalog_last_run_timestamp_seconds",
			Help: "Unix time at which the last command finished",
		},
	)

	return m
}

// RecordDocumentOperation records a document operation
func (m *Metrics) RecordDocumentOperation(operation string, status string, duration time.Duration) {
	m.DocumentOperationsTotal.WithLabelValues(operation, status).Inc()
	m.DocumentOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordConfigLookup records a configuration lookup
func (m *Metrics) RecordConfigLookup(found bool) {
	status := "found"
	if !found {
		status = "missing"
	}
	m.ConfigLookupsTotal.WithLabelValues(status).Inc()
}

// DocumentOperation implements metadata.Observer
func (m *Metrics) DocumentOperation(op, path string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RecordDocumentOperation(op, status, duration)
}

// CacheLookup implements metadata.Observer
func (m *Metrics) CacheLookup(hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

// MarkDone records the outcome of command and stamps its completion time.
// It returns the time elapsed since the metrics were created.
func (m *Metrics) MarkDone(command string, err error) time.Duration {
	elapsed := time.Since(m.StartTime)
	status := "success"
	if err != nil {
		status = "error"
	}
	m.CommandsTotal.WithLabelValues(command, status).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
	m.LastRunTimestamp.SetToCurrentTime()
	return elapsed
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, for pickup by a node exporter textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
