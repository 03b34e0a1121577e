package storage

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/photos"
)

// fakeKV is an in-memory kv.Store with injectable failures.
type fakeKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

// fakePhotos records delete attempts and can be made to fail them.
type fakePhotos struct {
	mu        sync.Mutex
	deleted   []string
	deleteErr error
}

func (f *fakePhotos) Import(_ context.Context, srcPath string, _ photos.Kind) (string, error) {
	return srcPath, nil
}

func (f *fakePhotos) Delete(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, path)
	return f.deleteErr
}

func (f *fakePhotos) deleteAttempts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.deleted))
	copy(out, f.deleted)
	return out
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
