// api/storage/disk.go
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
)

// BlobStore persists uploaded file payloads. Metadata lives in the entity
// store; the blob store only ever sees opaque bytes.
type BlobStore interface {
	Save(name string, r io.Reader) (path string, size int64, err error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

// DiskStore writes payloads under a root directory, one file per upload,
// keyed by a fresh UUID so colliding client file names never overwrite each
// other.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) (string, int64, error) {
	path := filepath.Join(s.root, uuid.New().String()+filepath.Ext(name))

	f, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create blob file", zap.Error(err), zap.String("path", path))
		return "", 0, echo_errors.ErrStorageFailure
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		logger.Error("Failed to write blob file", zap.Error(err), zap.String("path", path))
		return "", 0, echo_errors.ErrStorageFailure
	}

	return path, size, nil
}

func (s *DiskStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, echo_errors.ErrFileNotFound
		}
		logger.Error("Failed to open blob file", zap.Error(err), zap.String("path", path))
		return nil, echo_errors.ErrStorageFailure
	}
	return f, nil
}

func (s *DiskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Error("Failed to remove blob file", zap.Error(err), zap.String("path", path))
		return echo_errors.ErrStorageFailure
	}
	return nil
}
