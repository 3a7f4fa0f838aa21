package workout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/briangreenhill/mapty/internal/observability"
)

var (
	ErrNoLocation  = errors.New("no location selected on the map")
	ErrMapNotReady = errors.New("map is not loaded")
)

type MapView struct {
	Center Coords `json:"center"`
	Zoom   int    `json:"zoom"`
	Ready  bool   `json:"ready"`
}

// Input is a submitted workout form. Coords is optional; when nil the last
// point selected on the map is used.
type Input struct {
	Kind      Kind
	Coords    *Coords
	Distance  float64
	Duration  float64
	Cadence   float64
	Elevation float64
}

func (in Input) extra() float64 {
	if in.Kind == KindCycling {
		return in.Elevation
	}
	return in.Cadence
}

// Service holds the session state: the workouts, the map view and the point
// last clicked on the map.
type Service struct {
	mu        sync.Mutex
	store     *Store
	persister *Persister
	logger    *slog.Logger
	view      MapView
	draft     *Coords
}

func NewService(persister *Persister, logger *slog.Logger, zoom int) *Service {
	return &Service{
		store:     NewStore(),
		persister: persister,
		logger:    logger,
		view:      MapView{Zoom: zoom},
	}
}

// Start rehydrates the store and asks the locator once for the user's
// position. Neither step is fatal: a bad snapshot starts empty and a failed
// lookup leaves the map unloaded.
func (s *Service) Start(ctx context.Context, locator Locator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Error("Error loading workouts", slog.Any("error", err))
		workouts = nil
	}
	s.store.ReplaceAll(workouts)

	pos, err := locator.Locate(ctx)
	if err != nil {
		s.logger.Warn("Map not loaded", slog.Any("error", err))
		s.view.Ready = false
		return
	}

	s.view.Center = pos
	s.view.Ready = true
	s.logger.Info("Map loaded", slog.Float64("lat", pos.Lat), slog.Float64("lng", pos.Lng))
}

// SelectPoint remembers a map click as the location of the next workout.
func (s *Service) SelectPoint(c Coords) error {
	if !c.Valid() {
		return ErrInvalidCoords
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &c
	return nil
}

// Record validates and stores a new workout, then snapshots the store. A
// failed snapshot is returned but the workout stays in the session.
func (s *Service) Record(ctx context.Context, in Input) (Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coords := in.Coords
	if coords == nil {
		coords = s.draft
	}
	if coords == nil {
		return Workout{}, ErrNoLocation
	}

	w, err := New(in.Kind, *coords, in.Distance, in.Duration, in.extra())
	if err != nil {
		return Workout{}, err
	}

	s.store.Append(w)
	s.draft = nil
	observability.RecordWorkout(string(w.Type))
	s.logger.Info("Workout recorded", slog.String("id", w.ID), slog.String("description", w.Description))

	if err := s.persister.Save(ctx, s.store); err != nil {
		return w, err
	}
	return w, nil
}

func (s *Service) Workouts() []Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.All()
}

func (s *Service) Get(id string) (Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.FindByID(id)
}

// Focus moves the map to the workout and counts the interaction.
func (s *Service) Focus(id string) (Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.view.Ready {
		return Workout{}, ErrMapNotReady
	}

	w, err := s.store.Click(id)
	if err != nil {
		return Workout{}, err
	}
	s.view.Center = w.Coords
	return w, nil
}

func (s *Service) View() MapView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Reset drops every workout, both in memory and in storage.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Clear(ctx); err != nil {
		return err
	}
	s.store.ReplaceAll(nil)
	s.draft = nil
	s.logger.Info("Workouts cleared")
	return nil
}
