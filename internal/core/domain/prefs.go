package domain

// Default terminal geometry used before the UI has reported its size.
const (
	DefaultWindowWidth  = 100
	DefaultWindowHeight = 30
)

// DefaultFindrFile is the data file name used when preferences name none.
const DefaultFindrFile = "findr.json"

// GuiSettings records the UI geometry from the last session.
type GuiSettings struct {
	// WindowWidth and WindowHeight are the last known terminal size in cells.
	WindowWidth  int
	WindowHeight int

	// WindowX and WindowY are the last known window position.
	// Negative values mean the position is unknown.
	WindowX int
	WindowY int
}

// DefaultGuiSettings returns the geometry used on first launch.
func DefaultGuiSettings() GuiSettings {
	return GuiSettings{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		WindowX:      -1,
		WindowY:      -1,
	}
}

// UserPrefs holds per-user preferences persisted between sessions.
type UserPrefs struct {
	GuiSettings GuiSettings

	// FindrFilePath is the location of the candidate data file.
	FindrFilePath string
}

// DefaultUserPrefs returns the preferences used when none are stored.
func DefaultUserPrefs() UserPrefs {
	return UserPrefs{
		GuiSettings:   DefaultGuiSettings(),
		FindrFilePath: DefaultFindrFile,
	}
}
