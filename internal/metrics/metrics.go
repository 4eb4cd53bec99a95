// Package metrics exposes Prometheus collectors for the scan engine:
// scan count, scan overrun count, and scan duration.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	scanCount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "petra",
		Subsystem: "scan",
		Name:      "count_total",
		Help:      "Total number of completed scans.",
	})

	scanOverrunTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "petra",
		Subsystem: "scan",
		Name:      "overrun_total",
		Help:      "Total number of scans that exceeded the configured scan_time_ms.",
	})

	scanDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "petra",
		Subsystem: "scan",
		Name:      "duration_seconds",
		Help:      "Observed duration of a single execute_blocks pass.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Registry is the collector registry scan engine metrics are registered
// against. Callers (typically cmd/petra-plc) expose it over HTTP.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(scanCount, scanOverrunTotal, scanDurationSeconds)
}

// ObserveScan records one completed scan's wall-clock duration.
func ObserveScan(d time.Duration) {
	scanCount.Inc()
	scanDurationSeconds.Observe(d.Seconds())
}

// IncOverrun records a scan that exceeded its configured cadence.
func IncOverrun() {
	scanOverrunTotal.Inc()
}
