// Package geo resolves the coordinates the app is currently working with:
// a user-pinned custom location when one is saved, the device position when
// the provider can supply one, and a fixed default otherwise.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
)

const customLocationKey = "custom_location"

// DefaultLocation is used when neither a custom location nor a device
// position is available (London).
var DefaultLocation = models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

// Provider supplies the device's current position. It stands in for the
// platform geolocation SDK; failures cover both permission denial and
// hardware errors.
type Provider interface {
	Current(ctx context.Context) (models.Coordinates, error)
}

// StaticProvider reports a fixed position. It backs installs without a
// location source and doubles as a test provider.
type StaticProvider struct {
	Coords models.Coordinates
	Err    error
}

func (p StaticProvider) Current(context.Context) (models.Coordinates, error) {
	if p.Err != nil {
		return models.Coordinates{}, p.Err
	}
	return p.Coords, nil
}

// Locator picks the working coordinates. Resolution order: persisted custom
// location, then the device provider, then the fallback. Provider failures
// degrade to the fallback with a warning; they never surface as errors.
type Locator struct {
	provider Provider
	kv       kv.Store
	fallback models.Coordinates
	log      logging.Logger
}

func NewLocator(provider Provider, store kv.Store, fallback models.Coordinates, log logging.Logger) *Locator {
	return &Locator{provider: provider, kv: store, fallback: fallback, log: log}
}

// Resolve returns the current working coordinates.
func (l *Locator) Resolve(ctx context.Context) models.Coordinates {
	data, err := l.kv.Get(ctx, customLocationKey)
	switch {
	case err == nil:
		var c models.Coordinates
		if err := json.Unmarshal(data, &c); err == nil {
			return c
		}
		l.log.Warn(ctx, "stored custom location is unreadable, ignoring", "error", err)
	case !errors.Is(err, kv.ErrNotFound):
		l.log.Warn(ctx, "failed to read custom location", "error", err)
	}

	coords, err := l.provider.Current(ctx)
	if err != nil {
		l.log.Warn(ctx, "device position unavailable, using default location", "error", err)
		return l.fallback
	}
	return coords
}

// SetCustom pins coordinates that override the device position until
// UseDevice is called.
func (l *Locator) SetCustom(ctx context.Context, coords models.Coordinates) error {
	data, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("encode custom location: %w", err)
	}
	if err := l.kv.Set(ctx, customLocationKey, data); err != nil {
		return fmt.Errorf("persist custom location: %w", err)
	}
	l.log.Info(ctx, "custom location set", "latitude", coords.Latitude, "longitude", coords.Longitude)
	return nil
}

// UseDevice clears any pinned location and resolves again.
func (l *Locator) UseDevice(ctx context.Context) (models.Coordinates, error) {
	if err := l.kv.Delete(ctx, customLocationKey); err != nil {
		return models.Coordinates{}, fmt.Errorf("clear custom location: %w", err)
	}
	return l.Resolve(ctx), nil
}
