package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/charmbracelet/log"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gravadigital/turnier-api/internal/logger"
)

// FirestoreConfig selects the project and root collection
type FirestoreConfig struct {
	ProjectID       string
	Collection      string
	CredentialsFile string
}

// FirestoreStore keeps each document at
// {collection}/{snapshot}/documents/{name}
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	log        *log.Logger
}

type firestoreDocument struct {
	Data      []byte    `firestore:"data"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func NewFirestoreStore(ctx context.Context, cfg FirestoreConfig) (*FirestoreStore, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id cannot be empty")
	}

	var opts []option.ClientOption
	switch {
	case os.Getenv("FIRESTORE_EMULATOR_HOST") != "":
		opts = append(opts, option.WithoutAuthentication())
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	l := logger.Storage("firestore")
	l.Info("Connected to Firestore", "project", cfg.ProjectID, "collection", cfg.Collection)
	return &FirestoreStore{client: client, collection: cfg.Collection, log: l}, nil
}

func (s *FirestoreStore) documents(snapshot string) *firestore.CollectionRef {
	return s.client.Collection(s.collection).Doc(snapshot).Collection("documents")
}

func (s *FirestoreStore) Write(ctx context.Context, snapshot, name string, data []byte) error {
	if err := ValidateKey(snapshot, name); err != nil {
		return err
	}
	_, err := s.documents(snapshot).Doc(name).Set(ctx, firestoreDocument{Data: data, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", snapshot, name, err)
	}
	return nil
}

func (s *FirestoreStore) Read(ctx context.Context, snapshot, name string) ([]byte, error) {
	if err := ValidateKey(snapshot, name); err != nil {
		return nil, err
	}
	snap, err := s.documents(snapshot).Doc(name).Get(ctx)
	if err != nil {
		return nil, firestoreReadError(snapshot, name, err)
	}
	var doc firestoreDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s/%s: %w", snapshot, name, err)
	}
	return doc.Data, nil
}

// firestoreReadError maps a NotFound status to ErrDocumentNotFound
func firestoreReadError(snapshot, name string, err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s/%s: %w", snapshot, name, ErrDocumentNotFound)
	}
	return fmt.Errorf("reading %s/%s: %w", snapshot, name, err)
}

func (s *FirestoreStore) List(ctx context.Context, snapshot string) ([]string, error) {
	if err := ValidatePath(snapshot); err != nil {
		return nil, err
	}
	it := s.documents(snapshot).Documents(ctx)
	defer it.Stop()

	var names []string
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing snapshot %s: %w", snapshot, err)
		}
		names = append(names, doc.Ref.ID)
	}
	slices.Sort(names)
	return names, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
