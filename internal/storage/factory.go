package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/storage/postgres"
)

// StorageType represents the type of storage backend
type StorageType string

const (
	StorageTypeFile      StorageType = "file"
	StorageTypeMemory    StorageType = "memory"
	StorageTypeMinio     StorageType = "minio"
	StorageTypeFirestore StorageType = "firestore"
	StorageTypePostgres  StorageType = "postgres"
)

// Factory creates the snapshot store for a storage type
type Factory struct {
	storageType StorageType
}

func NewFactory(storageType StorageType) *Factory {
	return &Factory{storageType: storageType}
}

// Create opens the configured backend
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (SnapshotStore, error) {
	switch f.storageType {
	case StorageTypeFile:
		return NewFileStore(cfg.File.DataDir)
	case StorageTypeMemory:
		return NewMemoryStore(), nil
	case StorageTypeMinio:
		return NewMinioStore(ctx, MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
	case StorageTypeFirestore:
		return NewFirestoreStore(ctx, FirestoreConfig{
			ProjectID:       cfg.Firestore.ProjectID,
			Collection:      cfg.Firestore.Collection,
			CredentialsFile: cfg.Firestore.CredentialsFile,
		})
	case StorageTypePostgres:
		db, err := postgres.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.AutoMigrate(db); err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		return &postgresStore{postgres.NewDocumentStore(db)}, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", f.storageType)
	}
}

// postgresStore adds key validation and maps the not-found error
type postgresStore struct {
	*postgres.DocumentStore
}

func (p *postgresStore) Write(ctx context.Context, snapshot, name string, data []byte) error {
	if err := ValidateKey(snapshot, name); err != nil {
		return err
	}
	return p.DocumentStore.Write(ctx, snapshot, name, data)
}

func (p *postgresStore) Read(ctx context.Context, snapshot, name string) ([]byte, error) {
	if err := ValidateKey(snapshot, name); err != nil {
		return nil, err
	}
	data, err := p.DocumentStore.Read(ctx, snapshot, name)
	if errors.Is(err, postgres.ErrDocumentNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrDocumentNotFound, err)
	}
	return data, err
}

func (p *postgresStore) List(ctx context.Context, snapshot string) ([]string, error) {
	if err := ValidatePath(snapshot); err != nil {
		return nil, err
	}
	return p.DocumentStore.List(ctx, snapshot)
}

// GetSupportedTypes returns a list of supported storage types
func GetSupportedTypes() []StorageType {
	return []StorageType{
		StorageTypeFile,
		StorageTypeMemory,
		StorageTypeMinio,
		StorageTypeFirestore,
		StorageTypePostgres,
	}
}

// ValidateStorageType validates if a storage type is supported
func ValidateStorageType(storageType string) (StorageType, error) {
	st := StorageType(storageType)

	for _, supported := range GetSupportedTypes() {
		if st == supported {
			return st, nil
		}
	}

	return "", fmt.Errorf("unsupported storage type: %s. Supported types: %v", storageType, GetSupportedTypes())
}

// Open validates the configured storage type and creates the store
func Open(ctx context.Context, cfg *config.Config) (SnapshotStore, error) {
	st, err := ValidateStorageType(cfg.Storage.Type)
	if err != nil {
		return nil, err
	}
	return NewFactory(st).Create(ctx, cfg)
}
