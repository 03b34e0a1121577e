// Package storage is the persistence core: two record collections held in
// memory as the write-through cache of one serialized blob each, persisted
// to the key-value store on every mutation, plus the facade that owns their
// load lifecycle.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
)

const (
	locationsKey = "saved_locations"
	uploadsKey   = "uploaded_drawings"
)

// LocationStore holds the bookmarked painting spots. All mutations are
// serialized behind a mutex and follow persist-then-commit order: the
// in-memory collection only changes after the durable write succeeded.
type LocationStore struct {
	kv  kv.Store
	log logging.Logger

	mu    sync.Mutex
	items []models.Location
}

func NewLocationStore(store kv.Store, log logging.Logger) *LocationStore {
	return &LocationStore{kv: store, log: log}
}

// Load reads the collection from durable storage. An absent key or
// unparseable content degrades to an empty collection; load never fails.
func (s *LocationStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, locationsKey)
	if errors.Is(err, kv.ErrNotFound) {
		s.items = nil
		return
	}
	if err != nil {
		s.log.Warn(ctx, "failed to read saved locations, starting empty", "error", err)
		s.items = nil
		return
	}

	var items []models.Location
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn(ctx, "saved locations are unreadable, starting empty", "error", err)
		s.items = nil
		return
	}
	s.items = items
}

// Save appends a new location. A location whose name already exists
// (compared case-insensitively) is not saved; that is reported as false, not
// as an error. True means the location was persisted.
func (s *LocationStore) Save(ctx context.Context, loc models.Location) (bool, error) {
	if err := loc.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if strings.EqualFold(existing.Name, loc.Name) {
			s.log.Debug(ctx, "location already saved", "name", loc.Name)
			return false, nil
		}
	}

	next := append(snapshotLocations(s.items), loc)
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.items = next

	s.log.Info(ctx, "location saved", "name", loc.Name)
	return true, nil
}

// List returns a snapshot of the collection in insertion order.
func (s *LocationStore) List() []models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocations(s.items)
}

// Remove deletes every location matching name, case-insensitively (one
// policy for both the duplicate check and removal). Removing a name that is
// not present still succeeds.
func (s *LocationStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Location, 0, len(s.items))
	for _, loc := range s.items {
		if !strings.EqualFold(loc.Name, name) {
			next = append(next, loc)
		}
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next

	s.log.Info(ctx, "location removed", "name", name)
	return nil
}

// Clear deletes the durable key and empties the in-memory collection.
func (s *LocationStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, locationsKey); err != nil {
		return fmt.Errorf("clear saved locations: %w", err)
	}
	s.items = nil
	return nil
}

func (s *LocationStore) persist(ctx context.Context, items []models.Location) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode saved locations: %w", err)
	}
	if err := s.kv.Set(ctx, locationsKey, data); err != nil {
		return fmt.Errorf("persist saved locations: %w", err)
	}
	return nil
}

func snapshotLocations(items []models.Location) []models.Location {
	out := make([]models.Location, len(items))
	copy(out, items)
	return out
}
