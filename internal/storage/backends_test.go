package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

func TestMinioReadErrorMapsNoSuchKey(t *testing.T) {
	err := minioReadError("cup", "days.json", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Contains(t, err.Error(), "cup/days.json")

	err = minioReadError("cup", "days.json", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})
	assert.NotErrorIs(t, err, ErrDocumentNotFound)
	assert.Contains(t, err.Error(), "reading cup/days.json")
}

func TestFirestoreReadErrorMapsNotFound(t *testing.T) {
	err := firestoreReadError("cup", "days.json", status.Error(codes.NotFound, "no document"))
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	err = firestoreReadError("cup", "days.json", status.Error(codes.PermissionDenied, "denied"))
	assert.NotErrorIs(t, err, ErrDocumentNotFound)

	err = firestoreReadError("cup", "days.json", errors.New("connection reset"))
	assert.NotErrorIs(t, err, ErrDocumentNotFound)
}

// keys are validated before any client call, so zero-value stores suffice
func TestRemoteStoresRejectInvalidKeys(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]SnapshotStore{
		"minio":     &MinioStore{},
		"firestore": &FirestoreStore{},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, store.Write(ctx, "../cup", "days.json", []byte("[]")), common.ErrInvalidInput)
			assert.ErrorIs(t, store.Write(ctx, "cup", "", []byte("[]")), common.ErrInvalidInput)
			_, err := store.Read(ctx, "cup", "a/b")
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			_, err = store.List(ctx, "")
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestRemoteStoresRequireSettings(t *testing.T) {
	ctx := context.Background()

	_, err := NewMinioStore(ctx, MinioConfig{Bucket: "turnier"})
	require.Error(t, err)
	_, err = NewMinioStore(ctx, MinioConfig{Endpoint: "localhost:9000"})
	require.Error(t, err)

	_, err = NewFirestoreStore(ctx, FirestoreConfig{Collection: "snapshots"})
	require.Error(t, err)
}
