package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gravadigital/turnier-api/internal/logger"
)

// Migration is one ordered schema change
type Migration struct {
	ID   string
	Name string
	Up   func(*gorm.DB) error
	Down func(*gorm.DB) error
}

// GetMigrations returns all migrations in order
func GetMigrations() []Migration {
	return []Migration{
		{ID: "001", Name: "create_snapshot_documents", Up: migration001Up, Down: migration001Down},
		{ID: "002", Name: "create_snapshot_indexes", Up: migration002Up, Down: migration002Down},
	}
}

// RunMigrations applies every migration not yet recorded in schema_migrations
func RunMigrations(db *gorm.DB) error {
	log := logger.Migration()

	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range GetMigrations() {
		if applied[m.ID] {
			log.Debug("Migration already applied, skipping", "id", m.ID, "name", m.Name)
			continue
		}

		log.Info("Running migration", "id", m.ID, "name", m.Name)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return fmt.Errorf("failed to run migration %s: %w", m.ID, err)
			}
			return tx.Exec("INSERT INTO schema_migrations (id, name) VALUES (?, ?)", m.ID, m.Name).Error
		})
		if err != nil {
			return err
		}
	}

	log.Info("Migrations up to date", "count", len(GetMigrations()))
	return nil
}

func createMigrationsTable(db *gorm.DB) error {
	return db.Exec(`
        CREATE TABLE IF NOT EXISTS schema_migrations (
            id VARCHAR(10) PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )
    `).Error
}

func appliedMigrations(db *gorm.DB) (map[string]bool, error) {
	var ids []string
	if err := db.Raw("SELECT id FROM schema_migrations").Scan(&ids).Error; err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(ids))
	for _, id := range ids {
		applied[id] = true
	}
	return applied, nil
}

// RollbackMigration reverts the most recently applied migration
func RollbackMigration(db *gorm.DB) error {
	log := logger.Migration()

	var last struct {
		ID   string
		Name string
	}
	err := db.Raw("SELECT id, name FROM schema_migrations ORDER BY id DESC LIMIT 1").Scan(&last).Error
	if err != nil {
		return fmt.Errorf("failed to get last migration: %w", err)
	}
	if last.ID == "" {
		return fmt.Errorf("no migrations to rollback")
	}

	var target *Migration
	for _, m := range GetMigrations() {
		if m.ID == last.ID {
			target = &m
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration %s not found", last.ID)
	}

	log.Info("Rolling back migration", "id", target.ID, "name", target.Name)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", target.ID, err)
		}
		return tx.Exec("DELETE FROM schema_migrations WHERE id = ?", target.ID).Error
	})
}
