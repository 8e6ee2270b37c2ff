package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore stores files under a local root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating root dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(ctx context.Context, dir, filename string, data []byte) (string, error) {
	rel := filepath.Join(dir, UniqueName(filename))
	abs, err := s.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("storage: creating dir: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: writing file: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func (s *DiskStore) Exists(ctx context.Context, path string) (bool, error) {
	abs, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(abs)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *DiskStore) Delete(ctx context.Context, path string) error {
	abs, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: removing file: %w", err)
	}
	return nil
}

// resolve joins a stored path to the root and rejects traversal outside it.
func (s *DiskStore) resolve(rel string) (string, error) {
	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	full, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if full != rootAbs && !strings.HasPrefix(full, rootAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes storage root: %s", rel)
	}
	return full, nil
}
