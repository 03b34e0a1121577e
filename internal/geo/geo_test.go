package geo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
)

type mapKV struct {
	data map[string][]byte
}

func (m *mapKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return v, nil
}

func (m *mapKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *mapKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLocator_ResolveDeviceWins(t *testing.T) {
	device := models.Coordinates{Latitude: 59.33, Longitude: 18.07}
	l := NewLocator(StaticProvider{Coords: device}, &mapKV{data: map[string][]byte{}}, DefaultLocation, discardLogger())

	assert.Equal(t, device, l.Resolve(context.Background()))
}

func TestLocator_ResolveFallsBackWhenProviderFails(t *testing.T) {
	l := NewLocator(StaticProvider{Err: errors.New("permission denied")},
		&mapKV{data: map[string][]byte{}}, DefaultLocation, discardLogger())

	assert.Equal(t, DefaultLocation, l.Resolve(context.Background()))
}

func TestLocator_CustomOverridesDevice(t *testing.T) {
	ctx := context.Background()
	device := models.Coordinates{Latitude: 59.33, Longitude: 18.07}
	custom := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	l := NewLocator(StaticProvider{Coords: device}, &mapKV{data: map[string][]byte{}}, DefaultLocation, discardLogger())

	require.NoError(t, l.SetCustom(ctx, custom))
	assert.Equal(t, custom, l.Resolve(ctx))
}

func TestLocator_UseDeviceClearsCustom(t *testing.T) {
	ctx := context.Background()
	device := models.Coordinates{Latitude: 59.33, Longitude: 18.07}
	custom := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	l := NewLocator(StaticProvider{Coords: device}, &mapKV{data: map[string][]byte{}}, DefaultLocation, discardLogger())
	require.NoError(t, l.SetCustom(ctx, custom))

	got, err := l.UseDevice(ctx)
	require.NoError(t, err)
	assert.Equal(t, device, got)
	assert.Equal(t, device, l.Resolve(ctx))
}

func TestLocator_CorruptCustomLocationIgnored(t *testing.T) {
	device := models.Coordinates{Latitude: 59.33, Longitude: 18.07}
	store := &mapKV{data: map[string][]byte{customLocationKey: []byte("{oops")}}

	l := NewLocator(StaticProvider{Coords: device}, store, DefaultLocation, discardLogger())
	assert.Equal(t, device, l.Resolve(context.Background()))
}
