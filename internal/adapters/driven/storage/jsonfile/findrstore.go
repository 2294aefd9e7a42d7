package jsonfile

import (
	"context"

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/record"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
	"github.com/allanrobert0203/tp/internal/logger"
)

// Ensure FindrStorage implements the interface.
var _ driven.FindrStorage = (*FindrStorage)(nil)

// FindrStorage keeps the candidate book in a single JSON file.
type FindrStorage struct {
	path string
}

// NewFindrStorage creates a store backed by the file at path.
// The file is not touched until Load or Save.
func NewFindrStorage(path string) *FindrStorage {
	return &FindrStorage{path: path}
}

// Path returns the data file location.
func (s *FindrStorage) Path() string {
	return s.path
}

// Load reads and validates the data file.
// It returns domain.ErrNotFound if the file does not exist and a
// *domain.IllegalValueError if its contents are invalid.
func (s *FindrStorage) Load(ctx context.Context) (*domain.Findr, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var r record.Findr
	if err := readJSON(s.path, &r); err != nil {
		return nil, err
	}
	f, err := r.ToDomain()
	if err != nil {
		return nil, err
	}
	logger.Debug("read %d candidates and %d tags from %s", len(r.Candidates), len(r.Tags), s.path)
	return f, nil
}

// Save writes data, replacing the file.
func (s *FindrStorage) Save(ctx context.Context, data domain.ReadOnlyFindr) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeJSON(s.path, record.FromFindr(data)); err != nil {
		return err
	}
	logger.Debug("wrote candidate book to %s", s.path)
	return nil
}
