package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps files under a directory on disk. Used for development
// and tests; production deployments use S3.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (store *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(key)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid file key %q", key)
	}
	return filepath.Join(store.dir, clean), nil
}

func (store *LocalStore) Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	p, err := store.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("failed to create dir for %q: %w", key, err)
	}
	if err := os.WriteFile(p, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return key, nil
}

func (store *LocalStore) Download(ctx context.Context, key string) ([]byte, error) {
	p, err := store.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (store *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	p, err := store.path(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
