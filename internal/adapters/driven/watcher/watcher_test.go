package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testDebounce = 100 * time.Millisecond

// startWatch runs Watch in the background and returns a channel of
// callbacks and a stop function that waits for Watch to return.
func startWatch(t *testing.T, path string) (<-chan struct{}, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 16)
	done := make(chan error, 1)

	go func() {
		done <- New(testDebounce).Watch(ctx, path, func() { changes <- struct{}{} })
	}()

	stop := func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Watch did not return after cancel")
		}
	}
	// Let the watcher register before the test writes.
	time.Sleep(100 * time.Millisecond)
	return changes, stop
}

func waitForChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatch_ReportsWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "findr.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	changes, stop := startWatch(t, path)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"candidates": []}`), 0o600))
	waitForChange(t, changes)
}

func TestWatch_ReportsAtomicReplace(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "findr.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	changes, stop := startWatch(t, path)
	defer stop()

	tmp := filepath.Join(dir, "findr.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"tags": []}`), 0o600))
	require.NoError(t, os.Rename(tmp, path))
	waitForChange(t, changes)
}

func TestWatch_DebouncesBurst(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "findr.json")
	changes, stop := startWatch(t, path)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0o600))
	}
	waitForChange(t, changes)

	// Nothing else arrives once the burst has been reported.
	time.Sleep(4 * testDebounce)
	assert.Empty(t, changes)
	stop()
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "findr.json")
	changes, stop := startWatch(t, path)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte("{}"), 0o600))
	time.Sleep(4 * testDebounce)
	assert.Empty(t, changes)
}

func TestWatch_MissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	err := New(0).Watch(context.Background(), filepath.Join(t.TempDir(), "absent", "findr.json"), func() {})
	assert.Error(t, err)
}

func TestNew_DefaultDebounce(t *testing.T) {
	assert.Equal(t, DefaultDebounce, New(0).debounce)
	assert.Equal(t, time.Second, New(time.Second).debounce)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want bool
	}{
		{fsnotify.Create, true},
		{fsnotify.Write, true},
		{fsnotify.Remove, true},
		{fsnotify.Rename, true},
		{fsnotify.Chmod, false},
		{fsnotify.Write | fsnotify.Chmod, true},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.op))
		})
	}
}

