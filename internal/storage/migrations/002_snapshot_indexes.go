package migrations

import "gorm.io/gorm"

// migration002Up adds the per-path index and backfills it from the stored documents
func migration002Up(db *gorm.DB) error {
	if err := db.AutoMigrate(&SnapshotIndex{}); err != nil {
		return err
	}
	return db.Exec(`
        INSERT INTO snapshot_indexes (snapshot_path, documents, updated_at)
        SELECT snapshot_path, array_agg(name ORDER BY name), MAX(updated_at)
        FROM snapshot_documents
        GROUP BY snapshot_path
        ON CONFLICT (snapshot_path) DO NOTHING
    `).Error
}

func migration002Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&SnapshotIndex{})
}
