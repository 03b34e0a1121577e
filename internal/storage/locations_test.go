package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-app/easel/internal/models"
)

func paris() models.Location {
	return models.Location{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522}
}

func TestLocationStore_SaveDuplicate(t *testing.T) {
	s := NewLocationStore(newFakeKV(), discardLogger())
	ctx := context.Background()

	saved, err := s.Save(ctx, paris())
	require.NoError(t, err)
	assert.True(t, saved)

	// same name again: not saved, but not an error either
	saved, err = s.Save(ctx, paris())
	require.NoError(t, err)
	assert.False(t, saved)

	assert.Len(t, s.List(), 1)
}

func TestLocationStore_SaveDuplicateCaseInsensitive(t *testing.T) {
	s := NewLocationStore(newFakeKV(), discardLogger())
	ctx := context.Background()

	_, err := s.Save(ctx, paris())
	require.NoError(t, err)

	saved, err := s.Save(ctx, models.Location{Name: "PARIS", Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Len(t, s.List(), 1)
}

func TestLocationStore_SaveInvalid(t *testing.T) {
	s := NewLocationStore(newFakeKV(), discardLogger())

	_, err := s.Save(context.Background(), models.Location{Name: "", Latitude: 1, Longitude: 2})
	assert.Error(t, err)
	assert.Empty(t, s.List())
}

func TestLocationStore_SavePersistFailure(t *testing.T) {
	store := newFakeKV()
	s := NewLocationStore(store, discardLogger())
	ctx := context.Background()

	store.setErr = errors.New("disk full")
	_, err := s.Save(ctx, paris())
	require.Error(t, err)

	// the in-memory collection must not diverge from durable state
	assert.Empty(t, s.List())
}

func TestLocationStore_ListOrderAndIsolation(t *testing.T) {
	s := NewLocationStore(newFakeKV(), discardLogger())
	ctx := context.Background()

	for _, name := range []string{"Dock", "Hill", "Bridge"} {
		_, err := s.Save(ctx, models.Location{Name: name, Latitude: 1, Longitude: 2})
		require.NoError(t, err)
	}

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "Dock", got[0].Name)
	assert.Equal(t, "Hill", got[1].Name)
	assert.Equal(t, "Bridge", got[2].Name)

	// snapshot, not the live collection
	got[0].Name = "mutated"
	assert.Equal(t, "Dock", s.List()[0].Name)
}

func TestLocationStore_RemoveIdempotent(t *testing.T) {
	s := NewLocationStore(newFakeKV(), discardLogger())
	ctx := context.Background()

	_, err := s.Save(ctx, paris())
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "Paris"))
	assert.Empty(t, s.List())

	// second removal of the same name still succeeds
	require.NoError(t, s.Remove(ctx, "Paris"))
	assert.Empty(t, s.List())
}

func TestLocationStore_RemoveCaseInsensitive(t *testing.T) {
	s := NewLocationStore(newFakeKV(), discardLogger())
	ctx := context.Background()

	_, err := s.Save(ctx, paris())
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "paris"))
	assert.Empty(t, s.List())
}

func TestLocationStore_LoadUnparseable(t *testing.T) {
	store := newFakeKV()
	require.NoError(t, store.Set(context.Background(), locationsKey, []byte("{not json")))

	s := NewLocationStore(store, discardLogger())
	s.Load(context.Background())

	assert.Empty(t, s.List())
}

func TestLocationStore_LoadRoundTrip(t *testing.T) {
	store := newFakeKV()
	ctx := context.Background()

	s := NewLocationStore(store, discardLogger())
	_, err := s.Save(ctx, paris())
	require.NoError(t, err)

	// a fresh store over the same kv sees the persisted collection
	s2 := NewLocationStore(store, discardLogger())
	s2.Load(ctx)

	got := s2.List()
	require.Len(t, got, 1)
	assert.Equal(t, paris(), got[0])
}
