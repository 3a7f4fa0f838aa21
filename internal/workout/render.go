package workout

import (
	"fmt"
	"html/template"
	"io"
	"slices"
)

func icon(k Kind) string {
	if k == KindRunning {
		return "🏃‍♂️"
	}
	return "🚴‍♀️"
}

// Popup is the text shown in a workout's map marker.
func Popup(w Workout) string {
	return fmt.Sprintf("%s %s", icon(w.Type), w.Description)
}

type Marker struct {
	ID        string `json:"id"`
	Coords    Coords `json:"coords"`
	Popup     string `json:"popup"`
	ClassName string `json:"className"`
}

func Markers(workouts []Workout) []Marker {
	markers := make([]Marker, 0, len(workouts))
	for _, w := range workouts {
		markers = append(markers, Marker{
			ID:        w.ID,
			Coords:    w.Coords,
			Popup:     Popup(w),
			ClassName: fmt.Sprintf("%s-popup", w.Type),
		})
	}
	return markers
}

var listTmpl = template.Must(template.New("list").Funcs(template.FuncMap{
	"icon":  icon,
	"fixed": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(`{{range .}}<li class="workout workout--{{.Type}}" data-id="{{.ID}}">
  <h2 class="workout__title">{{.Description}}</h2>
  <div class="workout__details">
    <span class="workout__icon">{{icon .Type}}</span>
    <span class="workout__value">{{.Distance}}</span>
    <span class="workout__unit">km</span>
  </div>
  <div class="workout__details">
    <span class="workout__icon">⏱</span>
    <span class="workout__value">{{.Duration}}</span>
    <span class="workout__unit">min</span>
  </div>
{{- if .Running}}
  <div class="workout__details">
    <span class="workout__icon">⚡️</span>
    <span class="workout__value">{{fixed .Running.Pace}}</span>
    <span class="workout__unit">min/km</span>
  </div>
  <div class="workout__details">
    <span class="workout__icon">🦶🏼</span>
    <span class="workout__value">{{.Running.Cadence}}</span>
    <span class="workout__unit">spm</span>
  </div>
{{- end}}
{{- if .Cycling}}
  <div class="workout__details">
    <span class="workout__icon">⚡️</span>
    <span class="workout__value">{{fixed .Cycling.Speed}}</span>
    <span class="workout__unit">km/h</span>
  </div>
  <div class="workout__details">
    <span class="workout__icon">⛰</span>
    <span class="workout__value">{{.Cycling.ElevationGain}}</span>
    <span class="workout__unit">m</span>
  </div>
{{- end}}
</li>
{{end}}`))

// RenderList writes the workout list items, newest first.
func RenderList(w io.Writer, workouts []Workout) error {
	newestFirst := slices.Clone(workouts)
	slices.Reverse(newestFirst)
	return listTmpl.Execute(w, newestFirst)
}
