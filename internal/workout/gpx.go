package workout

import (
	"errors"
	"fmt"
	"math"

	"github.com/tkrajina/gpxgo/gpx"
)

var ErrNoTrackPoints = errors.New("gpx file has no track points")

// FromGPX reads a recorded track into a workout Input. The workout is placed
// at the first track point. A NaN extra on a ride means "use the climb
// measured in the track".
func FromGPX(data []byte, kind Kind, extra float64) (Input, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return Input{}, fmt.Errorf("parsing gpx: %w", err)
	}

	start, ok := firstPoint(g)
	if !ok {
		return Input{}, ErrNoTrackPoints
	}

	moving := g.MovingData()

	in := Input{
		Kind:     kind,
		Coords:   &Coords{Lat: start.Latitude, Lng: start.Longitude},
		Distance: moving.MovingDistance / 1000.0,
		Duration: moving.MovingTime / 60.0,
	}

	switch kind {
	case KindRunning:
		in.Cadence = extra
	case KindCycling:
		in.Elevation = extra
		if math.IsNaN(extra) {
			in.Elevation = g.UphillDownhill().Uphill
		}
	}

	return in, nil
}

func firstPoint(g *gpx.GPX) (gpx.GPXPoint, bool) {
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			if len(segment.Points) > 0 {
				return segment.Points[0], true
			}
		}
	}
	return gpx.GPXPoint{}, false
}

// ToGPX encodes the workout as a single waypoint.
func ToGPX(w Workout) ([]byte, error) {
	point := gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  w.Coords.Lat,
			Longitude: w.Coords.Lng,
		},
		Timestamp:   w.Date,
		Name:        w.Description,
		Description: Popup(w),
		Type:        string(w.Type),
	}

	g := gpx.GPX{
		Name:      w.Description,
		Creator:   "mapty",
		Waypoints: []gpx.GPXPoint{point},
	}

	return g.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
}
