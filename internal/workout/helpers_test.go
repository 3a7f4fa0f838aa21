package workout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
)

var april14 = time.Date(2024, time.April, 14, 9, 30, 0, 0, time.UTC)

// pin fixes the clock and makes ids sequential: w1, w2, ...
func pin(t *testing.T, ts time.Time) {
	t.Helper()
	oldNow, oldID := now, newID
	n := 0
	now = func() time.Time { return ts }
	newID = func() string {
		n++
		return fmt.Sprintf("w%d", n)
	}
	t.Cleanup(func() {
		now, newID = oldNow, oldID
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errUnavailable = errors.New("storage unavailable")

// brokenKV fails every call, like storage that is full or unreachable.
type brokenKV struct{}

func (brokenKV) SetItem(context.Context, string, string) error { return errUnavailable }
func (brokenKV) GetItem(context.Context, string) (string, bool, error) {
	return "", false, errUnavailable
}
func (brokenKV) RemoveItem(context.Context, string) error { return errUnavailable }

func mustNew(t *testing.T, kind Kind, c Coords, distance, duration, extra float64) Workout {
	t.Helper()
	w, err := New(kind, c, distance, duration, extra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}
