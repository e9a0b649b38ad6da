// Package metrics collects Prometheus metrics for segmentation runs and
// database operations, and writes them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/katalvlaran/lvlseg/segment"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the metrics of one process.
type Collector struct {
	registry *prometheus.Registry

	// Segmentation metrics
	Runs         *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	Merges       prometheus.Counter
	Components   prometheus.Gauge
	EdgesVisited prometheus.Counter

	// Repository metrics
	DBOperations *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of segmentation runs",
		},
		[]string{"strategy"},
	)

	runDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Segmentation run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"strategy"},
	)

	merges := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Total number of component merges",
		},
	)

	components := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_components",
			Help:      "Number of components produced by the most recent run",
		},
	)

	edgesVisited := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_total",
			Help:      "Total number of edges segmented",
		},
	)

	dbOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_operations_total",
			Help:      "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	registry.MustRegister(runs, runDuration, merges, components, edgesVisited, dbOperations)

	return &Collector{
		registry:     registry,
		Runs:         runs,
		RunDuration:  runDuration,
		Merges:       merges,
		Components:   components,
		EdgesVisited: edgesVisited,
		DBOperations: dbOperations,
	}
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveRun records one finished segmentation over edges edges.
func (c *Collector) ObserveRun(strategy segment.Strategy, edges int, res *segment.Result, took time.Duration) {
	c.Runs.WithLabelValues(strategy.String()).Inc()
	c.RunDuration.WithLabelValues(strategy.String()).Observe(took.Seconds())
	c.Merges.Add(float64(res.Merges))
	c.Components.Set(float64(res.Len()))
	c.EdgesVisited.Add(float64(edges))
}

// ObserveDB records a database operation and its outcome.
func (c *Collector) ObserveDB(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.DBOperations.WithLabelValues(operation, status).Inc()
}

// WriteTextfile writes every metric to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
