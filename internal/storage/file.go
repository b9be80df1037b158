package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot stores the value as a single file on disk. Writes go through a
// temp file, fsync and rename so a crash mid-write never leaves a torn
// value behind.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) (*FileSlot, error) {
	if path == "" {
		return nil, errors.New("storage: file path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create directory: %w", err)
		}
	}
	return &FileSlot{path: path}, nil
}

func (s *FileSlot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read file: %w", err)
	}
	return value, nil
}

func (s *FileSlot) Set(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("storage: rename temp file: %w", err)
	}

	// Sync the directory so the rename itself survives a crash.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}

func (s *FileSlot) Close() error { return nil }
