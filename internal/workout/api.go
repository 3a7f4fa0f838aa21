package workout

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MapSettings struct {
	UIDir       string
	TileURL     string
	Attribution string
}

func NewAPI(logger *slog.Logger, service *Service, settings MapSettings) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServer(http.Dir(settings.UIDir)))
	mux.Handle("GET /map", handleGetMap(logger, service, settings))
	mux.Handle("POST /map/click", handleMapClick(logger, service))
	mux.Handle("GET /markers", handleGetMarkers(logger, service))
	mux.Handle("GET /workouts", handleGetWorkouts(logger, service))
	mux.Handle("POST /workouts", handleCreateWorkout(logger, service))
	mux.Handle("DELETE /workouts", handleReset(logger, service))
	mux.Handle("GET /workouts/list", handleGetWorkoutList(logger, service))
	mux.Handle("GET /workouts/{id}", handleGetWorkout(logger, service))
	mux.Handle("POST /workouts/{id}/focus", handleFocusWorkout(logger, service))
	mux.Handle("GET /workouts/{id}/gpx", handleExportWorkout(logger, service))
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	writeJSON(w, logger, status, map[string]string{"error": msg})
}

func handleGetMap(logger *slog.Logger, service *Service, settings MapSettings) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view := service.View()
		writeJSON(w, logger, http.StatusOK, map[string]any{
			"center":      view.Center,
			"zoom":        view.Zoom,
			"ready":       view.Ready,
			"tileUrl":     settings.TileURL,
			"attribution": settings.Attribution,
		})
	})
}

func handleMapClick(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := formCoords(r)
		if err := service.SelectPoint(c); err != nil {
			writeError(w, logger, http.StatusBadRequest, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func handleGetMarkers(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, Markers(service.Workouts()))
	})
}

func handleGetWorkouts(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, service.Workouts())
	})
}

func handleGetWorkoutList(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := RenderList(&buf, service.Workouts()); err != nil {
			logger.Error("Error rendering workouts", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.Error("Error writing workouts", slog.Any("error", err))
		}
	})
}

func handleCreateWorkout(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, err := ParseKind(r.FormValue("type"))
		if err != nil {
			writeError(w, logger, http.StatusBadRequest, err.Error())
			return
		}

		in := Input{
			Kind:      kind,
			Distance:  formFloat(r, "distance"),
			Duration:  formFloat(r, "duration"),
			Cadence:   formFloat(r, "cadence"),
			Elevation: formFloat(r, "elevation"),
		}
		if r.FormValue("lat") != "" || r.FormValue("lng") != "" {
			c := formCoords(r)
			in.Coords = &c
		}

		workout, err := service.Record(r.Context(), in)
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeError(w, logger, http.StatusBadRequest, "Inputs have to be positive numbers!")
			return
		case errors.Is(err, ErrInvalidCoords), errors.Is(err, ErrNoLocation), errors.Is(err, ErrUnknownKind):
			writeError(w, logger, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			logger.Error("Error recording workout", slog.Any("error", err))
			writeError(w, logger, http.StatusInternalServerError, "workout recorded but not saved")
			return
		}

		writeJSON(w, logger, http.StatusCreated, workout)
	})
}

func handleGetWorkout(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workout, err := service.Get(r.PathValue("id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, logger, http.StatusNotFound, err.Error())
			return
		}

		writeJSON(w, logger, http.StatusOK, workout)
	})
}

func handleFocusWorkout(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workout, err := service.Focus(r.PathValue("id"))
		switch {
		case errors.Is(err, ErrNotFound):
			writeError(w, logger, http.StatusNotFound, err.Error())
			return
		case errors.Is(err, ErrMapNotReady):
			writeError(w, logger, http.StatusConflict, err.Error())
			return
		case err != nil:
			logger.Error("Error focusing workout", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, workout)
	})
}

func handleExportWorkout(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workout, err := service.Get(r.PathValue("id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, logger, http.StatusNotFound, err.Error())
			return
		}

		data, err := ToGPX(workout)
		if err != nil {
			logger.Error("Error encoding gpx", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/gpx+xml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.Error("Error writing gpx", slog.Any("error", err))
		}
	})
}

func handleReset(logger *slog.Logger, service *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Reset(r.Context()); err != nil {
			logger.Error("Error resetting workouts", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// formCoords reads lat and lng. A missing coordinate reads as NaN so a half
// filled pair fails validation instead of landing on the equator.
func formCoords(r *http.Request) Coords {
	c := Coords{Lat: math.NaN(), Lng: math.NaN()}
	if r.FormValue("lat") != "" {
		c.Lat = formFloat(r, "lat")
	}
	if r.FormValue("lng") != "" {
		c.Lng = formFloat(r, "lng")
	}
	return c
}

// formFloat mirrors a numeric form field: blank reads as 0 and garbage as NaN,
// both of which fail validation later.
func formFloat(r *http.Request, key string) float64 {
	raw := r.FormValue(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
