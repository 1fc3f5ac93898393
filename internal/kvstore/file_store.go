package kvstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists one file per key under basePath. File names are the hex
// SHA-256 of the key so arbitrary query strings stay filesystem safe.
type FileStore struct {
	basePath string
}

// NewFileStore creates basePath if needed and returns a store rooted there.
func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, errors.New("kvstore: file store path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath exposes the store root (primarily for testing).
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes through a temp file and renames it into place so readers never see a partial value.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.path(key)
	tmp, err := os.CreateTemp(s.basePath, filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.basePath, hex.EncodeToString(sum[:])+".json")
}
