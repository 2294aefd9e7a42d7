package jsonfile

import (
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
)

// Ensure PrefsStorage implements the interface.
var _ driven.PrefsStorage = (*PrefsStorage)(nil)

type guiSettings struct {
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`
	WindowX      int `json:"windowX"`
	WindowY      int `json:"windowY"`
}

type userPrefs struct {
	GuiSettings   guiSettings `json:"guiSettings"`
	FindrFilePath string      `json:"findrFilePath"`
}

// PrefsStorage keeps user preferences in a JSON file.
type PrefsStorage struct {
	path string
}

// NewPrefsStorage creates a store backed by the file at path.
func NewPrefsStorage(path string) *PrefsStorage {
	return &PrefsStorage{path: path}
}

// Path returns the preferences file location.
func (s *PrefsStorage) Path() string {
	return s.path
}

// Load reads the preferences file. Fields absent from the file keep their
// default values.
func (s *PrefsStorage) Load() (domain.UserPrefs, error) {
	p := toFile(domain.DefaultUserPrefs())
	if err := readJSON(s.path, &p); err != nil {
		return domain.UserPrefs{}, err
	}
	if p.FindrFilePath == "" {
		p.FindrFilePath = domain.DefaultFindrFile
	}
	return domain.UserPrefs{
		GuiSettings: domain.GuiSettings{
			WindowWidth:  p.GuiSettings.WindowWidth,
			WindowHeight: p.GuiSettings.WindowHeight,
			WindowX:      p.GuiSettings.WindowX,
			WindowY:      p.GuiSettings.WindowY,
		},
		FindrFilePath: p.FindrFilePath,
	}, nil
}

// Save writes prefs, replacing the file.
func (s *PrefsStorage) Save(prefs domain.UserPrefs) error {
	return writeJSON(s.path, toFile(prefs))
}

func toFile(prefs domain.UserPrefs) userPrefs {
	return userPrefs{
		GuiSettings: guiSettings{
			WindowWidth:  prefs.GuiSettings.WindowWidth,
			WindowHeight: prefs.GuiSettings.WindowHeight,
			WindowX:      prefs.GuiSettings.WindowX,
			WindowY:      prefs.GuiSettings.WindowY,
		},
		FindrFilePath: prefs.FindrFilePath,
	}
}
