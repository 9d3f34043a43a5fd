package migrations

import "gorm.io/gorm"

func migration001Up(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(&SnapshotDocument{})
}

func migration001Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&SnapshotDocument{})
}
