package workout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

// Two 500 m legs, two minutes each.
const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning Run</name>
    <trkseg>
      <trkpt lat="0.0" lon="0.0"><ele>10</ele><time>2024-04-14T07:00:00Z</time></trkpt>
      <trkpt lat="0.0" lon="0.0045"><ele>20</ele><time>2024-04-14T07:02:00Z</time></trkpt>
      <trkpt lat="0.0" lon="0.009"><ele>15</ele><time>2024-04-14T07:04:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestFromGPXRunning(t *testing.T) {
	in, err := FromGPX([]byte(sampleGPX), KindRunning, 172)
	require.NoError(t, err)

	assert.Equal(t, KindRunning, in.Kind)
	require.NotNil(t, in.Coords)
	assert.Equal(t, Coords{Lat: 0, Lng: 0}, *in.Coords)
	assert.InDelta(t, 1.0, in.Distance, 0.02)
	assert.InDelta(t, 4.0, in.Duration, 0.001)
	assert.Equal(t, 172.0, in.Cadence)

	w, err := New(in.Kind, *in.Coords, in.Distance, in.Duration, in.extra())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, w.Running.Pace, 0.1)
}

func TestFromGPXCyclingUsesTrackClimb(t *testing.T) {
	in, err := FromGPX([]byte(sampleGPX), KindCycling, math.NaN())
	require.NoError(t, err)
	assert.Greater(t, in.Elevation, 0.0)

	in, err = FromGPX([]byte(sampleGPX), KindCycling, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, in.Elevation)
}

func TestFromGPXSkipsEmptySegments(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg></trkseg></trk>
  <trk>
    <trkseg></trkseg>
    <trkseg>
      <trkpt lat="51.5" lon="-0.12"><ele>10</ele><time>2024-04-14T07:00:00Z</time></trkpt>
      <trkpt lat="51.5" lon="-0.1128"><ele>10</ele><time>2024-04-14T07:02:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

	in, err := FromGPX([]byte(data), KindRunning, 170)
	require.NoError(t, err)

	require.NotNil(t, in.Coords)
	assert.Equal(t, Coords{Lat: 51.5, Lng: -0.12}, *in.Coords)
	assert.Greater(t, in.Distance, 0.0)
}

func TestFromGPXWithoutTrack(t *testing.T) {
	empty := `<?xml version="1.0"?><gpx version="1.1" creator="test"></gpx>`

	_, err := FromGPX([]byte(empty), KindRunning, 170)
	require.ErrorIs(t, err, ErrNoTrackPoints)

	onlyEmpty := `<?xml version="1.0"?><gpx version="1.1" creator="test"><trk><trkseg></trkseg></trk></gpx>`
	_, err = FromGPX([]byte(onlyEmpty), KindRunning, 170)
	require.ErrorIs(t, err, ErrNoTrackPoints)

	_, err = FromGPX([]byte("not xml"), KindRunning, 170)
	require.Error(t, err)
}

func TestToGPX(t *testing.T) {
	pin(t, april14)
	w := mustNew(t, KindCycling, london, 20, 60, 400)

	data, err := ToGPX(w)
	require.NoError(t, err)

	g, err := gpx.ParseBytes(data)
	require.NoError(t, err)
	require.Len(t, g.Waypoints, 1)

	wpt := g.Waypoints[0]
	assert.InDelta(t, london.Lat, wpt.Latitude, 1e-9)
	assert.InDelta(t, london.Lng, wpt.Longitude, 1e-9)
	assert.Equal(t, "Cycling on April 14", wpt.Name)
	assert.True(t, april14.Equal(wpt.Timestamp))
}
