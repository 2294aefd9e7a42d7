package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/memory"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/services"
	"github.com/allanrobert0203/tp/internal/testutil"
)

// newTestServer returns a server over the typical candidates and the
// storage its commands save to.
func newTestServer(t *testing.T) (*Server, *memory.FindrStorage) {
	t.Helper()
	model, err := services.NewModelManager(testutil.TypicalFindr(), domain.DefaultUserPrefs())
	require.NoError(t, err)
	storage := memory.NewFindrStorage()

	server, err := NewServer(&Ports{Logic: services.NewLogicManager(model, storage)})
	require.NoError(t, err)
	return server, storage
}
