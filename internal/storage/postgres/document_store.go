// Package postgres stores snapshot documents in PostgreSQL through gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/storage/migrations"
)

// ErrDocumentNotFound is returned by Read when no row matches
var ErrDocumentNotFound = errors.New("snapshot document not found")

// DocumentStore keeps one row per snapshot document and one index row per
// snapshot path listing its document names
type DocumentStore struct {
	db  *gorm.DB
	log *log.Logger
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db, log: logger.Storage("postgres")}
}

// Write upserts the document and records its name in the path index
func (s *DocumentStore) Write(ctx context.Context, snapshot, name string, data []byte) error {
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doc := migrations.SnapshotDocument{SnapshotPath: snapshot, Name: name, Data: data, UpdatedAt: now}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "snapshot_path"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&doc).Error
		if err != nil {
			return fmt.Errorf("writing %s/%s: %w", snapshot, name, err)
		}

		var index migrations.SnapshotIndex
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("snapshot_path = ?", snapshot).First(&index).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			index = migrations.SnapshotIndex{SnapshotPath: snapshot, Documents: pq.StringArray{name}, UpdatedAt: now}
			return tx.Create(&index).Error
		case err != nil:
			return fmt.Errorf("reading index of %s: %w", snapshot, err)
		}

		if !slices.Contains(index.Documents, name) {
			index.Documents = append(index.Documents, name)
			slices.Sort(index.Documents)
		}
		index.UpdatedAt = now
		return tx.Save(&index).Error
	})
}

func (s *DocumentStore) Read(ctx context.Context, snapshot, name string) ([]byte, error) {
	var doc migrations.SnapshotDocument
	err := s.db.WithContext(ctx).
		Where("snapshot_path = ? AND name = ?", snapshot, name).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s/%s: %w", snapshot, name, ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", snapshot, name, err)
	}
	return doc.Data, nil
}

// List reads the document names from the path index
func (s *DocumentStore) List(ctx context.Context, snapshot string) ([]string, error) {
	var index migrations.SnapshotIndex
	err := s.db.WithContext(ctx).Where("snapshot_path = ?", snapshot).First(&index).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing snapshot %s: %w", snapshot, err)
	}
	return []string(index.Documents), nil
}

func (s *DocumentStore) Close() error {
	return Close(s.db)
}
