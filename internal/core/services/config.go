package services

import (
	"fmt"
	"strings"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Ensure ConfigService implements the interface.
var _ driving.ConfigService = (*ConfigService)(nil)

// Config keys for config.toml.
const (
	KeyPrefsFile   = "app.prefs_file"
	KeyLogFile     = "app.log_file"
	KeyBackend     = "storage.backend"
	KeyOnLoadError = "storage.on_load_error"
)

// ConfigService manages application configuration.
type ConfigService struct {
	configStore driven.ConfigStore
}

// NewConfigService creates a new config service.
func NewConfigService(configStore driven.ConfigStore) *ConfigService {
	return &ConfigService{configStore: configStore}
}

// Get returns the current configuration. Unset or invalid values fall back
// to their defaults.
func (s *ConfigService) Get() (domain.AppConfig, error) {
	defaults := domain.DefaultAppConfig()

	cfg := domain.AppConfig{
		PrefsFile: s.getString(KeyPrefsFile, defaults.PrefsFile),
		LogFile:   s.getString(KeyLogFile, defaults.LogFile),
		Storage: domain.StorageConfig{
			Backend:     defaults.Storage.Backend,
			OnLoadError: defaults.Storage.OnLoadError,
		},
	}

	if b := domain.StorageBackend(s.configStore.GetString(KeyBackend)); b.IsValid() {
		cfg.Storage.Backend = b
	}
	if p := domain.LoadErrorPolicy(s.configStore.GetString(KeyOnLoadError)); p.IsValid() {
		cfg.Storage.OnLoadError = p
	}

	return cfg, nil
}

// Set validates value for key and persists it.
func (s *ConfigService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyPrefsFile, KeyLogFile:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
	case KeyBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%w: storage backend must be one of json, sqlite, memory (got %q)",
				domain.ErrInvalidInput, value)
		}
	case KeyOnLoadError:
		if !domain.LoadErrorPolicy(value).IsValid() {
			return fmt.Errorf("%w: load error policy must be empty or fail (got %q)",
				domain.ErrInvalidInput, value)
		}
	default:
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, value)
}

// Keys returns every recognised configuration key in display order.
func (s *ConfigService) Keys() []string {
	return []string{KeyPrefsFile, KeyLogFile, KeyBackend, KeyOnLoadError}
}

// GetDefaults returns the default configuration.
func (s *ConfigService) GetDefaults() domain.AppConfig {
	return domain.DefaultAppConfig()
}

// Path returns where configuration is stored.
func (s *ConfigService) Path() string {
	return s.configStore.Path()
}

func (s *ConfigService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
