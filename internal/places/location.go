package places

import (
	"context"

	"github.com/rs/zerolog"
)

// LocationProvider yields the device's current coordinate on demand,
// together with a display label for it.
type LocationProvider interface {
	Current(ctx context.Context) (Coordinate, string, error)
}

// StaticProvider always returns a fixed coordinate, e.g. one the user set
// by geocoding an address.
type StaticProvider struct {
	Coord Coordinate
	Label string
}

// Current implements LocationProvider
func (p StaticProvider) Current(ctx context.Context) (Coordinate, string, error) {
	return p.Coord, p.Label, nil
}

// fallbackProvider wraps another provider so that any failure (denied
// permission, no fix) degrades to a fixed default coordinate instead of
// failing the screen.
type fallbackProvider struct {
	inner LocationProvider
	coord Coordinate
	label string
	log   zerolog.Logger
}

// Fallback wraps a provider with a default coordinate; the result never
// returns an error.
func Fallback(inner LocationProvider, coord Coordinate, label string, log zerolog.Logger) LocationProvider {
	return &fallbackProvider{inner: inner, coord: coord, label: label, log: log}
}

func (p *fallbackProvider) Current(ctx context.Context) (Coordinate, string, error) {
	coord, label, err := p.inner.Current(ctx)
	if err != nil {
		p.log.Debug().Err(err).Msg("Location unavailable, using default")
		return p.coord, p.label, nil
	}
	return coord, label, nil
}
