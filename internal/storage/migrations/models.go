package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SnapshotDocument stores one document of a snapshot
type SnapshotDocument struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SnapshotPath string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_snapshot_documents_path_name"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_snapshot_documents_path_name"`
	Data         []byte    `gorm:"type:bytea;not null"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (SnapshotDocument) TableName() string {
	return "snapshot_documents"
}

// SnapshotIndex lists the document names written under a snapshot path
type SnapshotIndex struct {
	SnapshotPath string         `gorm:"type:varchar(255);primaryKey"`
	Documents    pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	UpdatedAt    time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (SnapshotIndex) TableName() string {
	return "snapshot_indexes"
}
