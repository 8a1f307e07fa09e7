package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LogoStore writes uploaded employer logos under <baseDir>/logos and
// hands back the relative path recorded on the employer row.
type LogoStore struct {
	baseDir string
}

func NewLogoStore(baseDir string) *LogoStore {
	return &LogoStore{baseDir: baseDir}
}

// Save streams the upload to a generated filename and returns its
// path relative to the base dir, e.g. "logos/3f2a….png".
func (s *LogoStore) Save(src io.Reader, ext string) (string, error) {
	dir := filepath.Join(s.baseDir, "logos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create logo directory: %w", err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create logo file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write logo file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to finalize logo file: %w", err)
	}

	return filepath.Join("logos", name), nil
}

// Remove deletes a previously saved logo. Used as compensating
// cleanup when registration fails after the file was written.
func (s *LogoStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.baseDir, relPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove logo file: %w", err)
	}
	return nil
}
