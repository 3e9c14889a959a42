// Package storage persists uploaded files (profile photos, resumes) on
// local disk and hands back the relative path stored on the profile.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes uploads under a root directory, one subdirectory per
// file kind ("photos", "resumes").
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save streams the uploaded file to disk under kind/ with a generated name
// that keeps the original extension. Returns the path relative to the root.
func (s *DiskStore) Save(kind string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s dir: %w", kind, err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.Join(kind, name), nil
}

// Remove deletes a previously saved file. Missing files are not an error.
func (s *DiskStore) Remove(relPath string) error {
	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
