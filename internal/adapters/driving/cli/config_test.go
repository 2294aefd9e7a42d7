package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "show", configShowCmd.Use)
	assert.Equal(t, "set <key> <value>", configSetCmd.Use)
}

func TestConfigCmd_ShowDefaults(t *testing.T) {
	out, err := execute(t, "", "--config-dir", t.TempDir(), "config")

	require.NoError(t, err)
	defaults := domain.DefaultAppConfig()
	assert.Contains(t, out, "Configuration (")
	assert.Contains(t, out, defaults.PrefsFile)
	assert.Contains(t, out, defaults.LogFile)
	assert.Contains(t, out, "storage.backend")
	assert.Contains(t, out, defaults.Storage.Backend.String())
	assert.Contains(t, out, "json (JSON file)")
}

func TestConfigCmd_SetAndShow(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "--config-dir", dir, "config", "set", "storage.on_load_error", "fail")
	require.NoError(t, err)
	assert.Contains(t, out, "Set storage.on_load_error = fail")

	out, err = execute(t, "", "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "fail")
}

func TestConfigCmd_SetInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "--config-dir", dir, "config", "set", "storage.backend", "postgres")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "", "--config-dir", dir, "config", "set", "nope", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigCmd_SetRequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "", "--config-dir", t.TempDir(), "config", "set", "storage.backend")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestConfigCmd_SQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "--config-dir", dir, "config", "set", "storage.backend", "sqlite")
	require.NoError(t, err)

	_, err = execute(t, "", "--config-dir", dir, "run", "clear", "all")
	require.NoError(t, err)

	out, err := execute(t, "", "--config-dir", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No candidates found.")

	out, err = execute(t, "", "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite (SQLite database)")
}
