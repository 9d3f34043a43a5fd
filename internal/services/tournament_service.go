package services

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/competition"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
	"github.com/gravadigital/turnier-api/internal/domain/tournament"
	"github.com/gravadigital/turnier-api/internal/export"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/metrics"
	"github.com/gravadigital/turnier-api/internal/snapshot"
	"github.com/gravadigital/turnier-api/internal/storage"
)

// TournamentService exposes the lifecycle, schedule, event and assignment
// operations of the session's tournament
type TournamentService struct {
	session     *Session
	store       storage.SnapshotStore
	metrics     *metrics.Metrics
	defaultPath string
	log         *log.Logger
}

func NewTournamentService(session *Session, store storage.SnapshotStore, m *metrics.Metrics, defaultPath string) *TournamentService {
	return &TournamentService{
		session:     session,
		store:       store,
		metrics:     m,
		defaultPath: defaultPath,
		log:         logger.Service("tournament"),
	}
}

func (s *TournamentService) path(p string) string {
	if p == "" {
		return s.defaultPath
	}
	return p
}

// Create starts an empty tournament, replacing any loaded one
func (s *TournamentService) Create(name string) (tournament.Summary, error) {
	t := tournament.New("")
	if err := t.ChangeName(name); err != nil {
		s.metrics.Operation("create", err)
		return tournament.Summary{}, err
	}
	summary := s.session.Replace("create", t, nil)
	s.log.Info("Tournament created", "name", summary.Name)
	return summary, nil
}

func (s *TournamentService) ChangeName(name string) error {
	_, err := s.session.Write("change_name", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return nil, t.ChangeName(name)
	})
	return err
}

func (s *TournamentService) Summary() (tournament.Summary, error) {
	var out tournament.Summary
	err := s.session.Read(func(t *tournament.Tournament) error {
		out = t.Summary()
		return nil
	})
	return out, err
}

// LoadResult describes a loaded snapshot
type LoadResult struct {
	Path     string             `json:"path"`
	Metadata snapshot.Metadata  `json:"metadata"`
	Summary  tournament.Summary `json:"summary"`
}

// Load reads a snapshot and replaces the loaded tournament. Reading happens
// outside the session lock; only the swap is exclusive.
func (s *TournamentService) Load(ctx context.Context, path string) (LoadResult, common.Diagnostics, error) {
	path = s.path(path)
	start := time.Now()
	t, meta, diags, err := snapshot.Load(ctx, s.store, path)
	s.metrics.ObserveSnapshot(metrics.DirectionLoad, time.Since(start))
	if err != nil {
		s.metrics.Operation("load", err)
		return LoadResult{}, diags, fmt.Errorf("loading snapshot %s: %w", path, err)
	}

	summary := s.session.Replace("load", t, diags)
	s.log.Info("Snapshot loaded", "path", path, "revision", meta.Revision, "warnings", len(diags))
	return LoadResult{Path: path, Metadata: meta, Summary: summary}, diags, nil
}

// Save captures the tournament under the read lock and writes it outside.
// Document failures are isolated; the joined error lists each of them.
func (s *TournamentService) Save(ctx context.Context, path string) (snapshot.Metadata, error) {
	path = s.path(path)
	var snap tournament.Snapshot
	if err := s.session.Read(func(t *tournament.Tournament) error {
		snap = t.Snapshot()
		return nil
	}); err != nil {
		s.metrics.Operation("save", err)
		return snapshot.Metadata{}, err
	}

	start := time.Now()
	meta, err := snapshot.Save(ctx, s.store, path, snap)
	s.metrics.ObserveSnapshot(metrics.DirectionSave, time.Since(start))
	s.metrics.Operation("save", err)
	if err != nil {
		s.log.Error("Snapshot saved with errors", "path", path, "error", err)
		return meta, fmt.Errorf("saving snapshot %s: %w", path, err)
	}
	s.log.Info("Snapshot saved", "path", path, "revision", meta.Revision)
	return meta, nil
}

func (s *TournamentService) AddDay(spec schedule.Spec) (uint32, error) {
	var id uint32
	_, err := s.session.Write("add_day", func(t *tournament.Tournament) (common.Diagnostics, error) {
		var err error
		id, err = t.AddDay(spec)
		return nil, err
	})
	return id, err
}

func (s *TournamentService) RemoveDay(id uint32) (common.Diagnostics, error) {
	return s.session.Write("remove_day", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.RemoveDay(id), nil
	})
}

func (s *TournamentService) SimpleDays() ([]schedule.SimpleDay, error) {
	var out []schedule.SimpleDay
	err := s.session.Read(func(t *tournament.Tournament) error {
		out = t.SimpleDays()
		return nil
	})
	return out, err
}

func (s *TournamentService) DayData(id uint32) (schedule.DayData, error) {
	var out schedule.DayData
	err := s.session.Read(func(t *tournament.Tournament) error {
		var err error
		out, err = t.DayData(id)
		return err
	})
	return out, err
}

// ExportDay renders the day schedule as xlsx
func (s *TournamentService) ExportDay(id uint32) ([]byte, schedule.Date, error) {
	data, err := s.DayData(id)
	if err != nil {
		return nil, schedule.Date{}, err
	}
	out, err := export.Day(data)
	return out, data.Date, err
}

func (s *TournamentService) AddBewerb(name string, nRounds, nGroups uint32) (common.BewerbID, error) {
	var id common.BewerbID
	_, err := s.session.Write("add_bewerb", func(t *tournament.Tournament) (common.Diagnostics, error) {
		var err error
		id, err = t.AddBewerb(name, nRounds, nGroups)
		return nil, err
	})
	return id, err
}

func (s *TournamentService) RemoveBewerb(id uint32) (common.Diagnostics, error) {
	return s.session.Write("remove_bewerb", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.RemoveBewerb(id), nil
	})
}

func (s *TournamentService) Bewerbs() ([]competition.SimpleBewerb, error) {
	var out []competition.SimpleBewerb
	err := s.session.Read(func(t *tournament.Tournament) error {
		out = t.Bewerbs()
		return nil
	})
	return out, err
}

func (s *TournamentService) FreeGroups() ([]common.GroupID, error) {
	var out []common.GroupID
	err := s.session.Read(func(t *tournament.Tournament) error {
		out = t.AllFreeGroups()
		return nil
	})
	return out, err
}

func (s *TournamentService) AddGroupToArena(group common.GroupID, arena common.ArenaSlotID) (common.Diagnostics, error) {
	return s.session.Write("add_group_to_arena", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.AddGroupToArena(group, arena)
	})
}

func (s *TournamentService) FreeUpGroup(group common.GroupID) (common.Diagnostics, error) {
	return s.session.Write("free_up_group", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.FreeUpGroup(group)
	})
}

func (s *TournamentService) FreeUpArena(arena common.ArenaSlotID) (common.Diagnostics, error) {
	return s.session.Write("free_up_arena", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.FreeUpArena(arena)
	})
}
