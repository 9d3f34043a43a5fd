package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/snapshot"
	"github.com/gravadigital/turnier-api/internal/storage"
	"github.com/gravadigital/turnier-api/internal/storage/migrations"
	"github.com/gravadigital/turnier-api/internal/storage/postgres"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	from := flag.String("from", "", "Storage type to copy a snapshot from")
	to := flag.String("to", "", "Storage type to copy a snapshot to")
	path := flag.String("path", "", "Snapshot path to copy, defaults to the configured one")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level)
	log := logger.Migration()

	if *from != "" || *to != "" {
		if *path == "" {
			*path = cfg.Storage.SnapshotPath
		}
		if err := copySnapshot(context.Background(), cfg, *from, *to, *path, log); err != nil {
			log.Error("Snapshot copy failed", "error", err)
			os.Exit(1)
		}
		fmt.Println("Snapshot copy completed!")
		return
	}

	log.Info("Starting migration process", "rollback", *rollback)

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer postgres.Close(db)

	if *rollback {
		log.Info("Rolling back migrations...")
		if err := migrations.RollbackMigration(db); err != nil {
			log.Error("Migration rollback failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migration rollback completed successfully")
	} else {
		log.Info("Running migrations...")
		if err := migrations.RunMigrations(db); err != nil {
			log.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migrations completed successfully")
	}

	fmt.Println("Migration process completed!")
}

// copySnapshot copies every document of a snapshot between two backends
func copySnapshot(ctx context.Context, cfg *config.Config, from, to, path string, log *log.Logger) error {
	if from == "" || to == "" {
		return fmt.Errorf("both -from and -to are required")
	}
	if from == to {
		return fmt.Errorf("-from and -to must differ")
	}

	src, err := openStore(ctx, cfg, from)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := openStore(ctx, cfg, to)
	if err != nil {
		return err
	}
	defer dst.Close()

	log.Info("Copying snapshot", "path", path, "from", from, "to", to)
	return snapshot.Copy(ctx, src, dst, path)
}

func openStore(ctx context.Context, cfg *config.Config, kind string) (storage.SnapshotStore, error) {
	st, err := storage.ValidateStorageType(kind)
	if err != nil {
		return nil, err
	}
	store, err := storage.NewFactory(st).Create(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", kind, err)
	}
	return store, nil
}
