package driven

import "github.com/allanrobert0203/tp/internal/core/domain"

// PrefsStorage persists user preferences.
type PrefsStorage interface {
	// Path returns the preferences file location.
	Path() string

	// Load reads stored preferences.
	// Returns domain.ErrNotFound if the file does not exist.
	Load() (domain.UserPrefs, error)

	// Save writes prefs, creating parent directories as needed.
	Save(prefs domain.UserPrefs) error
}
