package driven

import "context"

// FileWatcher reports changes to a file made outside the application.
type FileWatcher interface {
	// Watch calls onChange after each burst of writes to path until ctx is
	// cancelled. It blocks, so callers run it in a goroutine.
	Watch(ctx context.Context, path string, onChange func()) error
}
