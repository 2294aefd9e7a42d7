package memory

import (
	"sync"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
)

// Ensure PrefsStorage implements the interface.
var _ driven.PrefsStorage = (*PrefsStorage)(nil)

// PrefsStorage is an in-memory implementation of driven.PrefsStorage.
type PrefsStorage struct {
	mu    sync.RWMutex
	prefs *domain.UserPrefs
}

// NewPrefsStorage creates an empty store.
func NewPrefsStorage() *PrefsStorage {
	return &PrefsStorage{}
}

// Path returns a placeholder location.
func (s *PrefsStorage) Path() string {
	return ":memory:"
}

// Load returns the stored preferences or domain.ErrNotFound.
func (s *PrefsStorage) Load() (domain.UserPrefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.prefs == nil {
		return domain.UserPrefs{}, domain.ErrNotFound
	}
	return *s.prefs, nil
}

// Save stores prefs.
func (s *PrefsStorage) Save(prefs domain.UserPrefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = &prefs
	return nil
}
