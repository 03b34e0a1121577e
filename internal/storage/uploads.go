package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
	"github.com/easel-app/easel/internal/photos"
)

// UploadStore holds the artwork session records and couples their lifecycle
// to the photo assets they own: deleting a record releases its files.
// Mutations are serialized behind a mutex and follow persist-then-commit
// order.
type UploadStore struct {
	kv     kv.Store
	photos photos.Store
	log    logging.Logger

	mu    sync.Mutex
	items []models.Upload
}

func NewUploadStore(store kv.Store, photoStore photos.Store, log logging.Logger) *UploadStore {
	return &UploadStore{kv: store, photos: photoStore, log: log}
}

// Load reads the collection from durable storage. An absent key or
// unparseable content degrades to an empty collection; load never fails.
func (s *UploadStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, uploadsKey)
	if errors.Is(err, kv.ErrNotFound) {
		s.items = nil
		return
	}
	if err != nil {
		s.log.Warn(ctx, "failed to read uploads, starting empty", "error", err)
		s.items = nil
		return
	}

	var items []models.Upload
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn(ctx, "stored uploads are unreadable, starting empty", "error", err)
		s.items = nil
		return
	}
	s.items = items
}

// Save validates the draft, assigns a fresh id and creation time, persists
// the grown collection and returns the new id. A persist failure propagates
// and leaves the in-memory collection untouched.
func (s *UploadStore) Save(ctx context.Context, draft models.UploadDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.Upload{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		Title:           draft.Title,
		Notes:           draft.Notes,
		SessionDateTime: draft.SessionDateTime,
		ArtworkPhoto:    draft.ArtworkPhoto,
		LocationPhoto:   draft.LocationPhoto,
		Location:        draft.Location,
	}

	next := append(snapshotUploads(s.items), u)
	if err := s.persist(ctx, next); err != nil {
		return "", err
	}
	s.items = next

	s.log.Info(ctx, "upload saved", "id", u.ID, "title", u.Title)
	return u.ID, nil
}

// GetAll returns a snapshot of the collection. Ordering is the caller's
// concern.
func (s *UploadStore) GetAll() []models.Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotUploads(s.items)
}

// GetByID returns the upload with the given id, or nil when absent.
func (s *UploadStore) GetByID(id string) *models.Upload {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.items {
		if u.ID == id {
			out := u
			return &out
		}
	}
	return nil
}

// Update shallow-merges the patch into the record with the given id. An
// unknown id reports (false, nil). Update never touches photo files; callers
// replacing a photo clean up the superseded file themselves after a
// successful update.
func (s *UploadStore) Update(ctx context.Context, id string, patch models.UploadPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.items {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	next := snapshotUploads(s.items)
	next[idx].Apply(patch)

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.items = next

	s.log.Info(ctx, "upload updated", "id", id)
	return true, nil
}

// Delete removes the record with the given id and releases its photo files.
// File deletion is best-effort: failures are logged and the record is
// removed regardless, because freeing space must not block the state change.
// An unknown id reports (false, nil).
func (s *UploadStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.items {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	s.deleteFiles(ctx, s.items[idx].PhotoPaths())

	next := append(snapshotUploads(s.items[:idx]), s.items[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.items = next

	s.log.Info(ctx, "upload deleted", "id", id)
	return true, nil
}

// Clear releases every photo file referenced by any upload (best-effort),
// deletes the durable key and empties the in-memory collection. A key-delete
// failure propagates without clearing memory.
func (s *UploadStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var paths []string
	for _, u := range s.items {
		paths = append(paths, u.PhotoPaths()...)
	}
	s.deleteFiles(ctx, paths)

	if err := s.kv.Delete(ctx, uploadsKey); err != nil {
		return fmt.Errorf("clear uploads: %w", err)
	}
	s.items = nil
	return nil
}

// deleteFiles removes the given assets concurrently and waits for all of
// them. Individual failures are logged and swallowed.
func (s *UploadStore) deleteFiles(ctx context.Context, paths []string) {
	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := s.photos.Delete(ctx, path); err != nil {
				s.log.Warn(ctx, "failed to delete photo file", "path", path, "error", err)
			}
		}(path)
	}
	wg.Wait()
}

func (s *UploadStore) persist(ctx context.Context, items []models.Upload) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode uploads: %w", err)
	}
	if err := s.kv.Set(ctx, uploadsKey, data); err != nil {
		return fmt.Errorf("persist uploads: %w", err)
	}
	return nil
}

func snapshotUploads(items []models.Upload) []models.Upload {
	out := make([]models.Upload, len(items))
	copy(out, items)
	return out
}
