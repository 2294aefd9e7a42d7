package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/record"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/testutil"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestFindrStorage_Load_MissingFile(t *testing.T) {
	s := NewFindrStorage(filepath.Join(t.TempDir(), "absent.json"))

	f, err := s.Load(context.Background())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindrStorage_Load_TypicalFile(t *testing.T) {
	s := NewFindrStorage(testdata("typicalCandidatesFindr.json"))

	f, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, testutil.TypicalFindr().Equal(f), "got %s", f)
}

func TestFindrStorage_Load_InvalidFiles(t *testing.T) {
	tests := []struct {
		file    string
		message string
	}{
		{"invalidCandidateFindr.json", domain.MessageEmailConstraints},
		{"duplicateCandidateFindr.json", record.MessageDuplicateCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			f, err := NewFindrStorage(testdata(tt.file)).Load(context.Background())
			assert.Nil(t, f)
			require.ErrorIs(t, err, domain.ErrIllegalValue)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestFindrStorage_Load_NotJSON(t *testing.T) {
	_, err := NewFindrStorage(testdata("notJsonFindr.json")).Load(context.Background())

	var ierr *domain.IllegalValueError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Message, "notJsonFindr.json is not a valid JSON document")
}

func TestFindrStorage_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "findr.json")
	s := NewFindrStorage(path)
	original := testutil.TypicalFindr()

	// Save in a directory that does not exist yet.
	require.NoError(t, s.Save(ctx, original))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, original.Equal(got))

	// Modify and overwrite.
	require.NoError(t, original.AddCandidate(testutil.Hoon()))
	require.NoError(t, original.RemoveCandidate(testutil.Alice()))
	require.NoError(t, s.Save(ctx, original))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, original.Equal(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fileMode, info.Mode().Perm())
}

func TestFindrStorage_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFindrStorage(filepath.Join(dir, "findr.json"))

	require.NoError(t, s.Save(context.Background(), testutil.TypicalFindr()))
	require.NoError(t, s.Save(context.Background(), domain.NewFindr()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "findr.json", entries[0].Name())
}

func TestFindrStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "findr.json")
	s := NewFindrStorage(path)

	assert.ErrorIs(t, s.Save(ctx, testutil.TypicalFindr()), context.Canceled)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestFindrStorage_Path(t *testing.T) {
	assert.Equal(t, "some/file.json", NewFindrStorage("some/file.json").Path())
}
