package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/domain/common"
)

func stores(t *testing.T) map[string]SnapshotStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]SnapshotStore{
		"file":   fs,
		"memory": NewMemoryStore(),
	}
}

func TestStoreWriteReadList(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write(ctx, "spring", "days.json", []byte(`[]`)))
			require.NoError(t, s.Write(ctx, "spring", "bewerbs.json", []byte(`[1]`)))
			require.NoError(t, s.Write(ctx, "spring", "days.json", []byte(`[2]`)))
			require.NoError(t, s.Write(ctx, "autumn", "days.json", []byte(`[3]`)))

			data, err := s.Read(ctx, "spring", "days.json")
			require.NoError(t, err)
			assert.Equal(t, `[2]`, string(data))

			names, err := s.List(ctx, "spring")
			require.NoError(t, err)
			assert.Equal(t, []string{"bewerbs.json", "days.json"}, names)

			names, err = s.List(ctx, "winter")
			require.NoError(t, err)
			assert.Empty(t, names)
			require.NoError(t, s.Close())
		})
	}
}

func TestStoreReadMissing(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Read(context.Background(), "spring", "fencers.json")
			assert.ErrorIs(t, err, ErrDocumentNotFound)
		})
	}
}

func TestStoreRejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.Write(ctx, "../etc", "x.json", nil), common.ErrInvalidInput)
			assert.ErrorIs(t, s.Write(ctx, "spring", "a/b.json", nil), common.ErrInvalidInput)
			_, err := s.Read(ctx, "", "days.json")
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			_, err = s.List(ctx, "..")
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), "spring", "days.json", []byte(`[]`)))

	entries, err := os.ReadDir(filepath.Join(dir, "spring"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "days.json", entries[0].Name())
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	data := []byte(`[1]`)
	require.NoError(t, s.Write(ctx, "p", "d.json", data))
	data[1] = '9'

	got, err := s.Read(ctx, "p", "d.json")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestValidateStorageType(t *testing.T) {
	st, err := ValidateStorageType("minio")
	require.NoError(t, err)
	assert.Equal(t, StorageTypeMinio, st)

	_, err = ValidateStorageType("s3")
	assert.Error(t, err)
}

func TestOpenFileAndMemory(t *testing.T) {
	cfg := config.Default()
	cfg.File.DataDir = filepath.Join(t.TempDir(), "data")

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	assert.DirExists(t, cfg.File.DataDir)

	cfg.Storage.Type = "memory"
	s, err = Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	cfg.Storage.Type = "tape"
	_, err = Open(context.Background(), cfg)
	assert.Error(t, err)
}
