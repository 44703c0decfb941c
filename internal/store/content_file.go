// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/logger"
)

// fileContentStorage keeps document bodies under a local directory. Keys
// are slash separated paths relative to that directory.
type fileContentStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileContentStorage constructs a [ContentStorage] rooted at dir,
// creating it when missing.
func NewFileContentStorage(dir string, logger *logger.Logger) (ContentStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
	}
	logger.Debug().Str("dir", dir).Msg("creating file content storage")

	return &fileContentStorage{root: dir, logger: logger}, nil
}

func (s *fileContentStorage) Put(ctx context.Context, key string, r io.Reader, _ int64, _ string) error {
	log := logger.FromContext(ctx)

	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Err(err).Str("func", "*fileContentStorage.Put").Msg("error creating directory")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*fileContentStorage.Put").Msg("error creating file")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*fileContentStorage.Put").Msg("error writing file")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*fileContentStorage.Put").Msg("error moving file")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	return nil
}

func (s *fileContentStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileContentStorage.Get").Msg("error opening file")
		return nil, fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	return f, nil
}

func (s *fileContentStorage) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*fileContentStorage.Delete").Msg("error removing file")
		return fmt.Errorf("%w: %w", ErrStoringContent, err)
	}

	return nil
}

// path resolves key inside the root and rejects keys escaping it.
func (s *fileContentStorage) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: invalid key %q", ErrStoringContent, key)
	}

	return filepath.Join(s.root, clean), nil
}
