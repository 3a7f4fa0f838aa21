package workout

import (
	"context"
	"errors"
)

var ErrLocationUnavailable = errors.New("could not get your position")

// Locator answers a one-shot position request.
type Locator interface {
	Locate(ctx context.Context) (Coords, error)
}

// StaticLocator reports a fixed position. A nil position means the user's
// location is unknown.
type StaticLocator struct {
	Position *Coords
}

func (l StaticLocator) Locate(ctx context.Context) (Coords, error) {
	if err := ctx.Err(); err != nil {
		return Coords{}, err
	}
	if l.Position == nil {
		return Coords{}, ErrLocationUnavailable
	}
	return *l.Position, nil
}
