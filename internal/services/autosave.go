package services

import (
	"context"
	"time"

	"github.com/gravadigital/turnier-api/internal/logger"
)

// RunAutosave saves the loaded tournament every interval until ctx is done.
// Ticks while nothing is loaded are skipped.
func (s *TournamentService) RunAutosave(ctx context.Context, interval time.Duration) {
	log := logger.Service("autosave")
	if interval <= 0 {
		return
	}
	log.Info("Autosave enabled", "interval", interval, "path", s.defaultPath)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.session.Loaded() {
				continue
			}
			if _, err := s.Save(ctx, ""); err != nil {
				log.Error("Autosave failed", "error", err)
			}
		}
	}
}
