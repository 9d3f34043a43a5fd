//go:build integration

package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests against a real MinIO server and the Firestore emulator
// Run with: go test -tags=integration

func exerciseStore(t *testing.T, store SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "integration", "days.json", []byte(`[]`)))
	data, err := store.Read(ctx, "integration", "days.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	names, err := store.List(ctx, "integration")
	require.NoError(t, err)
	assert.Contains(t, names, "days.json")

	_, err = store.Read(ctx, "integration", "absent.json")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMinioStore(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	store, err := NewMinioStore(context.Background(), MinioConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    "turnier-integration",
	})
	require.NoError(t, err)
	defer store.Close()
	exerciseStore(t, store)
}

func TestFirestoreStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	store, err := NewFirestoreStore(context.Background(), FirestoreConfig{
		ProjectID:  "turnier-integration",
		Collection: "snapshots",
	})
	require.NoError(t, err)
	defer store.Close()
	exerciseStore(t, store)
}
