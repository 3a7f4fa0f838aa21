package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindRunning Kind = "running"
	KindCycling Kind = "cycling"
)

var (
	ErrInvalidInput  = errors.New("inputs have to be positive numbers")
	ErrUnknownKind   = errors.New("unknown workout type")
	ErrInvalidCoords = errors.New("invalid coordinates")
)

// Overridden in tests.
var (
	now   = time.Now
	newID = uuid.NewString
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRunning, KindCycling:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Coords is a latitude/longitude pair. It is encoded as [lat, lng].
type Coords struct {
	Lat float64
	Lng float64
}

func (c Coords) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lng})
}

func (c *Coords) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.Lat, c.Lng = pair[0], pair[1]
	return nil
}

func (c Coords) Valid() bool {
	return finite(c.Lat, c.Lng) &&
		c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}

type Running struct {
	Cadence float64 `json:"cadence"`
	// min/km
	Pace float64 `json:"pace"`
}

type Cycling struct {
	ElevationGain float64 `json:"elevationGain"`
	// km/h
	Speed float64 `json:"speed"`
}

// Workout is one logged session. Exactly one of Running or Cycling is set,
// matching Type. Their fields are flattened into the JSON object.
type Workout struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Coords      Coords    `json:"coords"`
	Distance    float64   `json:"distance"` // km
	Duration    float64   `json:"duration"` // min
	Type        Kind      `json:"type"`
	Description string    `json:"description"`
	Clicks      int       `json:"clicks"`

	*Running
	*Cycling
}

// New validates the inputs and builds a workout with its derived fields set.
// extra is the cadence for a run and the elevation gain for a ride.
func New(kind Kind, coords Coords, distanceKm, durationMin, extra float64) (Workout, error) {
	if !coords.Valid() {
		return Workout{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidCoords, coords.Lat, coords.Lng)
	}
	if !finite(distanceKm, durationMin, extra) || distanceKm <= 0 || durationMin <= 0 {
		return Workout{}, ErrInvalidInput
	}

	w := Workout{
		ID:       newID(),
		Date:     now(),
		Coords:   coords,
		Distance: distanceKm,
		Duration: durationMin,
		Type:     kind,
	}

	switch kind {
	case KindRunning:
		if extra <= 0 {
			return Workout{}, ErrInvalidInput
		}
		w.Running = &Running{
			Cadence: extra,
			Pace:    durationMin / distanceKm,
		}
	case KindCycling:
		w.Cycling = &Cycling{
			ElevationGain: extra,
			Speed:         distanceKm / (durationMin / 60),
		}
	default:
		return Workout{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	w.Description = describe(kind, w.Date)
	return w, nil
}

func describe(kind Kind, date time.Time) string {
	name := string(kind)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s on %s %d", name, date.Month(), date.Day())
}

// Metric returns the variant's headline figure: pace for runs, speed for rides.
func (w Workout) Metric() (float64, string) {
	switch {
	case w.Type == KindRunning && w.Running != nil:
		return w.Pace, "min/km"
	case w.Type == KindCycling && w.Cycling != nil:
		return w.Speed, "km/h"
	}
	return 0, ""
}

// clone copies the workout including its variant payload, so the copy shares
// nothing with the original.
func (w Workout) clone() Workout {
	if w.Running != nil {
		r := *w.Running
		w.Running = &r
	}
	if w.Cycling != nil {
		c := *w.Cycling
		w.Cycling = &c
	}
	return w
}

func (w *Workout) Click() {
	w.Clicks++
}

// consistent reports whether the variant payload matches Type. Snapshots edited
// by hand can break this.
func (w Workout) consistent() bool {
	switch w.Type {
	case KindRunning:
		return w.Running != nil && w.Cycling == nil
	case KindCycling:
		return w.Cycling != nil && w.Running == nil
	}
	return false
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
