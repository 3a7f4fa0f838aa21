package workout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopup(t *testing.T) {
	pin(t, april14)

	assert.Equal(t, "🏃‍♂️ Running on April 14", Popup(mustNew(t, KindRunning, london, 5, 25, 178)))
	assert.Equal(t, "🚴‍♀️ Cycling on April 14", Popup(mustNew(t, KindCycling, london, 20, 60, 400)))
}

func TestMarkers(t *testing.T) {
	pin(t, april14)
	s := threeWorkouts(t)

	markers := Markers(s.All())

	require.Len(t, markers, 3)
	assert.Equal(t, Marker{
		ID:        "w2",
		Coords:    london,
		Popup:     "🚴‍♀️ Cycling on April 14",
		ClassName: "cycling-popup",
	}, markers[1])
	assert.NotNil(t, Markers(nil))
}

func TestRenderList(t *testing.T) {
	pin(t, april14)
	workouts := []Workout{
		mustNew(t, KindRunning, london, 5, 27, 178),
		mustNew(t, KindCycling, london, 20, 47, 400),
	}

	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, workouts))
	html := buf.String()

	assert.Contains(t, html, `<li class="workout workout--running" data-id="w1">`)
	assert.Contains(t, html, `<li class="workout workout--cycling" data-id="w2">`)
	assert.Contains(t, html, ">27<")
	assert.Contains(t, html, ">5.4<", "pace is rounded to one decimal")
	assert.Contains(t, html, ">25.5<", "speed is rounded to one decimal")
	assert.Contains(t, html, ">400<")
	assert.Contains(t, html, "spm")

	// Newest first.
	assert.Less(t, strings.Index(html, `data-id="w2"`), strings.Index(html, `data-id="w1"`))
}

func TestRenderListEscapes(t *testing.T) {
	w := mustNew(t, KindRunning, london, 5, 25, 178)
	w.Description = `<script>alert("x")</script>`

	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, []Workout{w}))

	assert.NotContains(t, buf.String(), "<script>")
}
