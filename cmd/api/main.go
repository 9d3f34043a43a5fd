package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gravadigital/turnier-api/internal/config"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/metrics"
	"github.com/gravadigital/turnier-api/internal/server"
	"github.com/gravadigital/turnier-api/internal/services"
	"github.com/gravadigital/turnier-api/internal/snapshot"
	"github.com/gravadigital/turnier-api/internal/storage"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "turnier",
		Usage: "fencing tournament planning service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("config"); path != "" {
				return os.Setenv("CONFIG_FILE", path)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:  "inspect",
				Usage: "load a snapshot and print its summary and integrity warnings",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Usage: "snapshot path, defaults to the configured one"},
				},
				Action: inspect,
			},
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	logger.Initialize(cfg.Log.Level)
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Type, err)
	}
	defer store.Close()
	log.Info("Storage ready", "type", cfg.Storage.Type, "snapshot", cfg.Storage.SnapshotPath)

	m := metrics.New()
	session := services.NewSession(m)
	tournaments := services.NewTournamentService(session, store, m, cfg.Storage.SnapshotPath)
	fencers := services.NewFencerService(session)

	if cfg.Storage.Autoload {
		result, diags, err := tournaments.Load(ctx, "")
		switch {
		case errors.Is(err, storage.ErrDocumentNotFound):
			log.Info("No snapshot to autoload", "path", cfg.Storage.SnapshotPath)
		case err != nil:
			log.Error("Autoload failed", "error", err)
		default:
			log.Info("Autoloaded tournament", "name", result.Summary.Name, "warnings", len(diags))
		}
	}

	autosaveDone := make(chan struct{})
	go func() {
		defer close(autosaveDone)
		tournaments.RunAutosave(ctx, cfg.Storage.AutosaveInterval)
	}()

	srv := server.New(cfg, tournaments, fencers, m)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		stop()
		<-autosaveDone
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	<-autosaveDone

	if cfg.Storage.AutosaveInterval > 0 && session.Loaded() {
		if _, err := tournaments.Save(shutdownCtx, ""); err != nil {
			log.Error("Final save failed", "error", err)
		}
	}
	log.Info("Server exited")
	return nil
}

func inspect(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := c.String("path")
	if path == "" {
		path = cfg.Storage.SnapshotPath
	}

	store, err := storage.Open(c.Context, cfg)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Type, err)
	}
	defer store.Close()

	docs, err := store.List(c.Context, path)
	if err != nil {
		return err
	}
	t, meta, diags, err := snapshot.Load(c.Context, store, path)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "snapshot:   %s (%s)\n", path, cfg.Storage.Type)
	fmt.Fprintf(w, "revision:   %s\n", meta.Revision)
	fmt.Fprintf(w, "saved at:   %s\n", meta.SavedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "format:     %d\n", meta.FormatVersion)
	fmt.Fprintf(w, "documents:  %v\n", docs)

	s := t.Summary()
	fmt.Fprintf(w, "tournament: %s\n", s.Name)
	fmt.Fprintf(w, "days: %d  bewerbs: %d  groups: %d (free %d)  fencers: %d\n",
		s.Days, s.Bewerbs, s.Groups, s.FreeGroups, s.Fencers)

	if diags.Empty() {
		fmt.Fprintln(w, "no integrity warnings")
		return nil
	}
	fmt.Fprintf(w, "%d integrity warnings:\n", len(diags))
	for _, warning := range diags {
		fmt.Fprintf(w, "  %s\n", warning)
	}
	return nil
}
