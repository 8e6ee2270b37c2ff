package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore abstracts where uploaded files (avatars, logos, CVs) live.
// The rest of the application only records the returned paths.
type FileStore interface {
	// Save writes data under the given directory and returns the stored path.
	Save(ctx context.Context, dir, filename string, data []byte) (string, error)
	// Exists reports whether a previously stored path is still present.
	Exists(ctx context.Context, path string) (bool, error)
	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
}

// UniqueName derives a collision-free storage name from an upload's
// original filename, keeping the extension for content-type sniffing.
func UniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	if base == "" {
		base = "file"
	}
	// keep a readable prefix, cap it so paths stay short
	if len(base) > 40 {
		base = base[:40]
	}
	return fmt.Sprintf("%s_%s%s", base, uuid.NewString(), ext)
}
