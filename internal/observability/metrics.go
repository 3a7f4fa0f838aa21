// Package observability holds the prometheus collectors exported on /metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapty",
		Subsystem: "workouts",
		Name:      "recorded_total",
		Help:      "Number of workouts recorded, by type.",
	}, []string{"type"})
	snapshotSavedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mapty",
		Subsystem: "persistence",
		Name:      "last_snapshot_saved_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout snapshot written to storage.",
	})
	snapshotSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mapty",
		Subsystem: "persistence",
		Name:      "snapshot_size_bytes",
		Help:      "Size of the most recent workout snapshot.",
	})
)

func init() {
	prometheus.MustRegister(workoutsRecorded, snapshotSavedGauge, snapshotSizeGauge)
}

// RecordWorkout counts a newly recorded workout of the given type.
func RecordWorkout(kind string) {
	workoutsRecorded.WithLabelValues(kind).Inc()
}

// RecordSnapshotSaved updates the persistence watermark and size gauges.
func RecordSnapshotSaved(ts time.Time, size int) {
	if ts.IsZero() {
		return
	}
	snapshotSavedGauge.Set(float64(ts.Unix()))
	snapshotSizeGauge.Set(float64(size))
}
