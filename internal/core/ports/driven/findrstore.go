package driven

import (
	"context"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

// FindrStorage persists the candidate book.
// Implementations exist for a JSON document, SQLite and memory.
type FindrStorage interface {
	// Path returns the location the data is read from and written to.
	Path() string

	// Load reads the stored candidate book.
	// Returns domain.ErrNotFound if nothing has been stored yet, and an error
	// matching domain.ErrIllegalValue if the stored data is corrupt.
	Load(ctx context.Context) (*domain.Findr, error)

	// Save replaces the stored candidate book with findr.
	// Missing parent directories are created.
	Save(ctx context.Context, findr domain.ReadOnlyFindr) error
}
