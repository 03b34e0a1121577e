// Package photos stores the binary photo assets referenced by upload
// records. Assets are imported by copying them out of their source location
// (camera roll, picker cache) into managed storage under a generated name,
// and are deleted when the owning record releases them.
package photos

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"
)

// Kind tells the store which of the two photo slots an asset fills. It only
// affects the generated filename prefix.
type Kind string

const (
	KindArtwork  Kind = "artwork"
	KindLocation Kind = "location"
)

func (k Kind) prefix() string {
	if k == KindLocation {
		return "loc_"
	}
	return "art_"
}

// Store owns photo assets addressed by path.
type Store interface {
	// Import copies the image at srcPath into managed storage and returns
	// the new asset path. A failed copy never leaves a usable path behind.
	Import(ctx context.Context, srcPath string, kind Kind) (string, error)

	// Delete removes an asset. An already missing asset is not an error:
	// delete is used for cleanup and the file may legitimately be gone.
	Delete(ctx context.Context, path string) error
}

// newFileName generates a unique asset name of the form
// <prefix><unix-millis>_<random-hex><original-extension>.
func newFileName(kind Kind, srcPath string) (string, error) {
	suffix, err := randHex(3)
	if err != nil {
		return "", fmt.Errorf("generate filename suffix: %w", err)
	}
	return fmt.Sprintf("%s%d_%s%s", kind.prefix(), time.Now().UnixMilli(), suffix, filepath.Ext(srcPath)), nil
}

func randHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
