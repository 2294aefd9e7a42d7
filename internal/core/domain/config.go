package domain

// StorageBackend selects where candidate data is persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendJSON stores data in a JSON document.
	StorageBackendJSON StorageBackend = "json"

	// StorageBackendSQLite stores data in a local SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps data in memory only; nothing survives exit.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendJSON, StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendJSON:
		return "JSON file"
	case StorageBackendSQLite:
		return "SQLite database"
	case StorageBackendMemory:
		return "In-memory (not persisted)"
	default:
		return "Unknown"
	}
}

// LoadErrorPolicy decides what happens when stored data is corrupt.
type LoadErrorPolicy string

// Available load error policies.
const (
	// LoadErrorStartEmpty starts with an empty data set.
	LoadErrorStartEmpty LoadErrorPolicy = "empty"

	// LoadErrorFail refuses to start.
	LoadErrorFail LoadErrorPolicy = "fail"
)

// IsValid returns true if the policy is recognised.
func (p LoadErrorPolicy) IsValid() bool {
	return p == LoadErrorStartEmpty || p == LoadErrorFail
}

// String returns the string representation.
func (p LoadErrorPolicy) String() string {
	return string(p)
}

// StorageConfig holds data storage configuration.
type StorageConfig struct {
	// Backend selects the storage implementation.
	Backend StorageBackend

	// OnLoadError decides how corrupt data is handled at startup.
	OnLoadError LoadErrorPolicy
}

// AppConfig is the application configuration read from config.toml.
type AppConfig struct {
	// PrefsFile is the path of the user preferences JSON file.
	PrefsFile string

	// LogFile receives log output while the terminal UI owns the screen.
	LogFile string

	// Storage configures candidate data persistence.
	Storage StorageConfig
}

// DefaultAppConfig returns the configuration used when config.toml is absent.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		PrefsFile: "preferences.json",
		LogFile:   "findr.log",
		Storage: StorageConfig{
			Backend:     StorageBackendJSON,
			OnLoadError: LoadErrorStartEmpty,
		},
	}
}
