package workout

import (
	"errors"
	"slices"
)

var ErrNotFound = errors.New("workout not found")

// Store keeps workouts in insertion order. It is not safe for concurrent use;
// Service serializes access.
type Store struct {
	workouts []Workout
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(w Workout) {
	s.workouts = append(s.workouts, w.clone())
}

// All returns a deep copy of the workouts in insertion order.
func (s *Store) All() []Workout {
	out := make([]Workout, len(s.workouts))
	for i, w := range s.workouts {
		out[i] = w.clone()
	}
	return out
}

func (s *Store) Len() int {
	return len(s.workouts)
}

func (s *Store) FindByID(id string) (Workout, error) {
	i := s.index(id)
	if i < 0 {
		return Workout{}, ErrNotFound
	}
	return s.workouts[i].clone(), nil
}

// Click bumps the interaction counter of the workout with the given id.
func (s *Store) Click(id string) (Workout, error) {
	i := s.index(id)
	if i < 0 {
		return Workout{}, ErrNotFound
	}
	s.workouts[i].Click()
	return s.workouts[i].clone(), nil
}

// ReplaceAll overwrites the whole sequence. Only used when rehydrating.
func (s *Store) ReplaceAll(workouts []Workout) {
	s.workouts = make([]Workout, len(workouts))
	for i, w := range workouts {
		s.workouts[i] = w.clone()
	}
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.workouts, func(w Workout) bool {
		return w.ID == id
	})
}
