package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/app"
	"github.com/allanrobert0203/tp/internal/logger"
)

func TestTUICmd_Exists(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})

	require.NoError(t, err)
	assert.Equal(t, "tui", cmd.Use)
	assert.Equal(t, "Launch the interactive terminal UI", cmd.Short)
	assert.Contains(t, cmd.Long, "F1")
}

func TestRedirectLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "findr.log")

	restore, err := redirectLogs(path)
	require.NoError(t, err)
	logger.Warn("written to %s", "file")
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestWatchDataFile_NoWatcher(t *testing.T) {
	a, err := app.Open(context.Background(), app.Options{ConfigDir: t.TempDir(), Ephemeral: true})
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, watchDataFile(context.Background(), a))
}

func TestWatchDataFile_SignalsOnChange(t *testing.T) {
	dir := t.TempDir()
	a, err := app.Open(context.Background(), app.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Watcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := watchDataFile(ctx, a)
	require.NotNil(t, changes)

	// writes repeat until the watcher has registered the directory
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(a.Storage.Path(), []byte(`{"candidates":[],"tags":[]}`), 0o600)
		select {
		case <-changes:
			return true
		default:
			return false
		}
	}, 5*time.Second, 300*time.Millisecond)
}
