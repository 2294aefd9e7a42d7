package memory

import (
	"context"
	"sync"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
)

// Ensure FindrStorage implements the interface.
var _ driven.FindrStorage = (*FindrStorage)(nil)

// FindrStorage is an in-memory implementation of driven.FindrStorage.
// It stores a private copy, so later changes to a saved Findr are not seen.
type FindrStorage struct {
	mu    sync.RWMutex
	data  *domain.Findr
	saves int
}

// NewFindrStorage creates an empty store; Load returns domain.ErrNotFound
// until the first Save.
func NewFindrStorage() *FindrStorage {
	return &FindrStorage{}
}

// NewFindrStorageWith creates a store preloaded with a copy of data.
func NewFindrStorageWith(data domain.ReadOnlyFindr) (*FindrStorage, error) {
	f, err := domain.NewFindrFrom(data)
	if err != nil {
		return nil, err
	}
	return &FindrStorage{data: f}, nil
}

// Path returns a placeholder location.
func (s *FindrStorage) Path() string {
	return ":memory:"
}

// Load returns a copy of the stored Findr.
func (s *FindrStorage) Load(_ context.Context) (*domain.Findr, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, domain.ErrNotFound
	}
	return domain.NewFindrFrom(s.data)
}

// Save stores a copy of findr.
func (s *FindrStorage) Save(_ context.Context, findr domain.ReadOnlyFindr) error {
	f, err := domain.NewFindrFrom(findr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = f
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *FindrStorage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
