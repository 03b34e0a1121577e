package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/easel-app/easel/internal/logging"
)

// FSStore keeps assets on a filesystem directory. Production wires an OS
// filesystem; tests use afero's in-memory one.
type FSStore struct {
	fs  afero.Fs
	dir string
	log logging.Logger
}

// NewFSStore creates the asset directory if needed and returns a store
// rooted there.
func NewFSStore(fs afero.Fs, dir string, log logging.Logger) (*FSStore, error) {
	if err := fs.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FSStore{fs: fs, dir: dir, log: log}, nil
}

func (s *FSStore) Import(ctx context.Context, srcPath string, kind Kind) (string, error) {
	name, err := newFileName(kind, srcPath)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.dir, name)

	src, err := s.fs.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	out, err := s.fs.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create asset %s: %w", dst, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = s.fs.Remove(dst)
		return "", fmt.Errorf("copy image to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		_ = s.fs.Remove(dst)
		return "", fmt.Errorf("close asset %s: %w", dst, err)
	}

	s.log.Debug(ctx, "photo imported", "src", srcPath, "path", dst)
	return dst, nil
}

func (s *FSStore) Delete(ctx context.Context, path string) error {
	err := s.fs.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete asset %s: %w", path, err)
	}
	return nil
}
