package driving

import "github.com/allanrobert0203/tp/internal/core/domain"

// ConfigService manages application configuration.
type ConfigService interface {
	// Get returns the current configuration, with defaults for unset keys.
	Get() (domain.AppConfig, error)

	// Set validates and persists a single key.
	Set(key, value string) error

	// Keys returns every recognised configuration key in display order.
	Keys() []string

	// GetDefaults returns the default configuration.
	GetDefaults() domain.AppConfig
}
