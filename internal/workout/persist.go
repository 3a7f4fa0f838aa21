package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/briangreenhill/mapty/internal/observability"
)

// StorageKey is the key the workout snapshot is stored under.
const StorageKey = "workouts"

var ErrCorruptSnapshot = errors.New("corrupt workout snapshot")

// KeyValue is the storage collaborator the snapshot is written to.
type KeyValue interface {
	SetItem(ctx context.Context, key, value string) error
	GetItem(ctx context.Context, key string) (string, bool, error)
	RemoveItem(ctx context.Context, key string) error
}

type Persister struct {
	kv     KeyValue
	logger *slog.Logger
}

func NewPersister(kv KeyValue, logger *slog.Logger) *Persister {
	return &Persister{
		kv:     kv,
		logger: logger,
	}
}

// Save writes every workout in the store, derived fields included.
func (p *Persister) Save(ctx context.Context, store *Store) error {
	data, err := json.Marshal(store.All())
	if err != nil {
		return fmt.Errorf("encoding workouts: %w", err)
	}

	if err := p.kv.SetItem(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving workouts: %w", err)
	}

	observability.RecordSnapshotSaved(now(), len(data))
	return nil
}

// Load reads the snapshot back as plain data. A missing key or an unreachable
// storage both yield no workouts. Interaction counts are not restored.
func (p *Persister) Load(ctx context.Context) ([]Workout, error) {
	data, ok, err := p.kv.GetItem(ctx, StorageKey)
	if err != nil {
		p.logger.Warn("Storage unavailable, starting empty", slog.Any("error", err))
		return nil, nil
	}
	if !ok || data == "" {
		return nil, nil
	}

	var workouts []Workout
	if err := json.Unmarshal([]byte(data), &workouts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	for i := range workouts {
		if !workouts[i].consistent() {
			return nil, fmt.Errorf("%w: workout %q has type %q without matching fields",
				ErrCorruptSnapshot, workouts[i].ID, workouts[i].Type)
		}
		workouts[i].Clicks = 0
	}

	p.logger.Info("Loaded workouts", slog.Int("count", len(workouts)))
	return workouts, nil
}

func (p *Persister) Clear(ctx context.Context) error {
	if err := p.kv.RemoveItem(ctx, StorageKey); err != nil {
		return fmt.Errorf("clearing workouts: %w", err)
	}
	return nil
}
