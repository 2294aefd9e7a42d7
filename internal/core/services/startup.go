package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
	"github.com/allanrobert0203/tp/internal/logger"
)

// InitModel loads the candidate book and builds the model.
//
// With no stored data the sample candidate book is used. Corrupt or
// unreadable data either yields an empty candidate book or an error,
// according to policy.
func InitModel(ctx context.Context, storage driven.FindrStorage, prefs domain.UserPrefs,
	policy domain.LoadErrorPolicy) (*ModelManager, error) {
	logger.Section("Loading candidate book")

	var data *domain.Findr
	loaded, err := storage.Load(ctx)
	switch {
	case err == nil:
		logger.Debug("loaded %d candidates from %s", len(loaded.Candidates()), storage.Path())
		data = loaded
	case errors.Is(err, domain.ErrNotFound):
		logger.Info("data file %s not found, starting with sample candidates", storage.Path())
		data = domain.SampleFindr()
	case policy == domain.LoadErrorFail:
		return nil, fmt.Errorf("load %s: %w", storage.Path(), err)
	default:
		logger.Warn("data file %s could not be loaded, starting with an empty candidate book: %v",
			storage.Path(), err)
		data = domain.NewFindr()
	}

	return NewModelManager(data, prefs)
}

// LoadPrefs reads stored preferences, falling back to defaults when none are
// stored or they cannot be read.
func LoadPrefs(store driven.PrefsStorage) domain.UserPrefs {
	prefs, err := store.Load()
	switch {
	case err == nil:
		return prefs
	case errors.Is(err, domain.ErrNotFound):
		logger.Info("preferences file %s not found, using defaults", store.Path())
	default:
		logger.Warn("preferences file %s could not be loaded, using defaults: %v", store.Path(), err)
	}
	return domain.DefaultUserPrefs()
}

// SavePrefs writes the model's preferences.
func SavePrefs(store driven.PrefsStorage, model *ModelManager) error {
	if err := store.Save(model.UserPrefs()); err != nil {
		return fmt.Errorf("save preferences to %s: %w", store.Path(), err)
	}
	return nil
}
