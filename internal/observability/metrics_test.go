package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordWorkoutCountsByType(t *testing.T) {
	before := testutil.ToFloat64(workoutsRecorded.WithLabelValues("running"))

	RecordWorkout("running")
	RecordWorkout("running")
	RecordWorkout("cycling")

	require.Equal(t, before+2, testutil.ToFloat64(workoutsRecorded.WithLabelValues("running")))
}

func TestRecordSnapshotSaved(t *testing.T) {
	ts := time.Date(2024, time.April, 14, 9, 30, 0, 0, time.UTC)

	RecordSnapshotSaved(ts, 512)

	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(snapshotSavedGauge))
	require.Equal(t, float64(512), testutil.ToFloat64(snapshotSizeGauge))
}

func TestRecordSnapshotSavedIgnoresZeroTime(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	RecordSnapshotSaved(ts, 10)

	RecordSnapshotSaved(time.Time{}, 99)

	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(snapshotSavedGauge))
	require.Equal(t, float64(10), testutil.ToFloat64(snapshotSizeGauge))
}
