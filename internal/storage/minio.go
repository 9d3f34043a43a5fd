package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gravadigital/turnier-api/internal/logger"
)

// MinioConfig holds the connection settings of an S3-compatible endpoint
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStore keeps documents as objects named {snapshot}/{name}
type MinioStore struct {
	client *minio.Client
	bucket string
	log    *log.Logger
}

// NewMinioStore connects to the endpoint and creates the bucket if missing
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket cannot be empty")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	s := &MinioStore{client: client, bucket: cfg.Bucket, log: logger.Storage("minio")}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", cfg.Bucket, err)
		}
		s.log.Info("Created bucket", "bucket", cfg.Bucket)
	}
	return s, nil
}

func objectName(snapshot, name string) string {
	return path.Join(snapshot, name)
}

func (s *MinioStore) Write(ctx context.Context, snapshot, name string, data []byte) error {
	if err := ValidateKey(snapshot, name); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName(snapshot, name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", snapshot, name, err)
	}
	return nil
}

func (s *MinioStore) Read(ctx context.Context, snapshot, name string) ([]byte, error) {
	if err := ValidateKey(snapshot, name); err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(snapshot, name), minio.GetObjectOptions{})
	if err != nil {
		return nil, minioReadError(snapshot, name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, minioReadError(snapshot, name, err)
	}
	return data, nil
}

// minioReadError maps a missing object to ErrDocumentNotFound
func minioReadError(snapshot, name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s/%s: %w", snapshot, name, ErrDocumentNotFound)
	}
	return fmt.Errorf("reading %s/%s: %w", snapshot, name, err)
}

func (s *MinioStore) List(ctx context.Context, snapshot string) ([]string, error) {
	if err := ValidatePath(snapshot); err != nil {
		return nil, err
	}
	prefix := snapshot + "/"
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("listing snapshot %s: %w", snapshot, obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, prefix))
	}
	slices.Sort(names)
	return names, nil
}

func (s *MinioStore) Close() error {
	return nil
}
