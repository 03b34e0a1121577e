package storage

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
	"github.com/easel-app/easel/internal/photos"
)

// Facade aggregates the two stores behind one interface and owns their load
// lifecycle. It is the only component that holds the in-memory collections;
// everything else reads snapshots or calls the operations below.
//
// Query operations called before Initialize has completed return empty
// results and a warning, never an error: the collections simply have not
// been loaded yet.
type Facade struct {
	locations *LocationStore
	uploads   *UploadStore
	log       logging.Logger
	ready     atomic.Bool
}

func New(store kv.Store, photoStore photos.Store, log logging.Logger) *Facade {
	return &Facade{
		locations: NewLocationStore(store, log),
		uploads:   NewUploadStore(store, photoStore, log),
		log:       log,
	}
}

// Initialize loads both collections from durable storage. The loads run
// concurrently (the collections are independent) and both finish before the
// ready flag is set. Initialize never fails: missing or unreadable state
// degrades to empty collections.
func (f *Facade) Initialize(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.locations.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		f.uploads.Load(ctx)
	}()
	wg.Wait()

	f.ready.Store(true)
	f.log.Info(ctx, "storage initialized",
		"locations", len(f.locations.List()),
		"uploads", len(f.uploads.GetAll()))
}

// Ready reports whether Initialize has completed.
func (f *Facade) Ready() bool {
	return f.ready.Load()
}

// SaveLocation appends a bookmarked spot. False without an error means a
// spot with that name already exists.
func (f *Facade) SaveLocation(ctx context.Context, loc models.Location) (bool, error) {
	return f.locations.Save(ctx, loc)
}

// ListLocations returns the saved spots in insertion order.
func (f *Facade) ListLocations(ctx context.Context) []models.Location {
	if !f.ready.Load() {
		f.log.Warn(ctx, "listing locations before storage is initialized")
		return nil
	}
	return f.locations.List()
}

// RemoveLocation deletes a spot by name; removing an unknown name succeeds.
func (f *Facade) RemoveLocation(ctx context.Context, name string) error {
	return f.locations.Remove(ctx, name)
}

// SaveUpload records a new artwork session and returns its generated id.
func (f *Facade) SaveUpload(ctx context.Context, draft models.UploadDraft) (string, error) {
	return f.uploads.Save(ctx, draft)
}

// GetAllUploads returns all session records, unsorted.
func (f *Facade) GetAllUploads(ctx context.Context) []models.Upload {
	if !f.ready.Load() {
		f.log.Warn(ctx, "listing uploads before storage is initialized")
		return nil
	}
	return f.uploads.GetAll()
}

// GetUploadByID returns a session record, or nil when the id is unknown.
func (f *Facade) GetUploadByID(ctx context.Context, id string) *models.Upload {
	if !f.ready.Load() {
		f.log.Warn(ctx, "reading upload before storage is initialized", "id", id)
		return nil
	}
	return f.uploads.GetByID(id)
}

// UpdateUpload patches a session record; (false, nil) means the id is
// unknown.
func (f *Facade) UpdateUpload(ctx context.Context, id string, patch models.UploadPatch) (bool, error) {
	return f.uploads.Update(ctx, id, patch)
}

// DeleteUpload removes a session record and releases its photo files;
// (false, nil) means the id is unknown.
func (f *Facade) DeleteUpload(ctx context.Context, id string) (bool, error) {
	return f.uploads.Delete(ctx, id)
}

// ClearAll wipes everything: photo files (best-effort), both durable keys
// and both in-memory collections. The wipe is not atomic; a failure midway
// leaves the earlier steps applied.
func (f *Facade) ClearAll(ctx context.Context) error {
	if err := f.uploads.Clear(ctx); err != nil {
		return err
	}
	if err := f.locations.Clear(ctx); err != nil {
		return err
	}
	f.log.Info(ctx, "all data cleared")
	return nil
}
