package services

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/tournament"
	"github.com/gravadigital/turnier-api/internal/logger"
	"github.com/gravadigital/turnier-api/internal/metrics"
)

// Session serializes access to the single tournament of the process:
// mutations hold the write lock, reads share the read lock.
type Session struct {
	mu      sync.RWMutex
	state   tournament.State
	metrics *metrics.Metrics
	log     *log.Logger
}

func NewSession(m *metrics.Metrics) *Session {
	return &Session{metrics: m, log: logger.Service("session")}
}

// Loaded reports whether a tournament is present
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loaded()
}

// Read runs fn against the loaded tournament under the shared lock
func (s *Session) Read(fn func(*tournament.Tournament) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.state.Get()
	if err != nil {
		return err
	}
	return fn(t)
}

// Write runs a mutation under the exclusive lock, then records its outcome
// and warnings
func (s *Session) Write(op string, fn func(*tournament.Tournament) (common.Diagnostics, error)) (common.Diagnostics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.state.Get()
	if err != nil {
		s.metrics.Operation(op, err)
		return nil, err
	}
	diags, err := fn(t)
	s.record(op, diags, err)
	return diags, err
}

// Replace swaps in a new tournament and returns its summary, taken before
// the lock is released
func (s *Session) Replace(op string, t *tournament.Tournament, diags common.Diagnostics) tournament.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Set(t)
	s.record(op, diags, nil)
	return t.Summary()
}

func (s *Session) record(op string, diags common.Diagnostics, err error) {
	s.metrics.Operation(op, err)
	s.metrics.Warnings(diags)
	for _, w := range diags {
		s.log.Warn("Integrity warning", "operation", op, "code", w.Code, "message", w.Message)
	}
	if err != nil {
		s.log.Debug("Operation failed", "operation", op, "error", err)
	}
}
