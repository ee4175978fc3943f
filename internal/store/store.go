// Package store is the content-addressed file store. Files are named by the
// sha256 of their bytes, so identical uploads collide onto one path and a
// stored file is never overwritten.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fyang93/housing-ocr/constants"
)

type ContentStore struct {
	root   string
	logger *slog.Logger
}

func New(root string, logger *slog.Logger) (*ContentStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	return &ContentStore{root: root, logger: logger}, nil
}

// Hash returns the sha256 digest of data.
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// PathFor returns the storage path for a hash and extension.
func (s *ContentStore) PathFor(hash []byte, ext string) string {
	name := hex.EncodeToString(hash)
	if e := constants.NormalizeExt(ext); e != "" {
		name += "." + e
	}
	return filepath.Join(s.root, name)
}

// Save writes data under its content-addressed path and returns that path.
// The write goes through a temp file and rename so readers never observe a
// partial file. If the path already exists the bytes are identical and the
// write is skipped.
func (s *ContentStore) Save(hash []byte, ext string, data []byte) (string, error) {
	path := s.PathFor(hash, ext)
	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("store hit, skipping write", "path", path)
		return path, nil
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename into store: %w", err)
	}
	s.logger.Info("stored file", "path", path, "bytes", len(data))
	return path, nil
}

// Remove deletes a stored file. A missing file is not an error; the ledger
// row may outlive the file only transiently during cleanup.
func (s *ContentStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file: %w", err)
	}
	return nil
}

// Exists reports whether a file for hash+ext is already stored.
func (s *ContentStore) Exists(hash []byte, ext string) bool {
	_, err := os.Stat(s.PathFor(hash, ext))
	return err == nil
}
