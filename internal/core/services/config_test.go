package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/memory"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

func TestConfigService_Get_ReturnsDefaults(t *testing.T) {
	service := NewConfigService(memory.NewConfigStore())

	cfg, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
	assert.Equal(t, domain.DefaultAppConfig(), service.GetDefaults())
}

func TestConfigService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyPrefsFile, "/tmp/prefs.json")
	_ = store.Set(KeyBackend, "sqlite")
	_ = store.Set(KeyOnLoadError, "fail")

	cfg, err := NewConfigService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/prefs.json", cfg.PrefsFile)
	assert.Equal(t, domain.DefaultAppConfig().LogFile, cfg.LogFile)
	assert.Equal(t, domain.StorageBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, domain.LoadErrorFail, cfg.Storage.OnLoadError)
}

func TestConfigService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyBackend, "postgres")
	_ = store.Set(KeyOnLoadError, "retry")
	_ = store.Set(KeyLogFile, 7)

	cfg, err := NewConfigService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
}

func TestConfigService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"prefs file", KeyPrefsFile, "p.json", false},
		{"log file", KeyLogFile, " findr.log ", false},
		{"backend json", KeyBackend, "json", false},
		{"backend memory", KeyBackend, "memory", false},
		{"policy fail", KeyOnLoadError, "fail", false},
		{"empty prefs file", KeyPrefsFile, "  ", true},
		{"unknown backend", KeyBackend, "postgres", true},
		{"unknown policy", KeyOnLoadError, "retry", true},
		{"unknown key", "search.mode", "hybrid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewConfigService(store)

			err := service.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				_, ok := store.Get(tt.key)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, store.GetString(tt.key))
		})
	}
}

func TestConfigService_KeysAndPath(t *testing.T) {
	service := NewConfigService(memory.NewConfigStore())

	assert.Equal(t, []string{KeyPrefsFile, KeyLogFile, KeyBackend, KeyOnLoadError}, service.Keys())
	assert.Equal(t, ":memory:", service.Path())
}
