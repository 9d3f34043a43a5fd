package services

import (
	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
	"github.com/gravadigital/turnier-api/internal/domain/tournament"
)

// FencerService exposes the roster operations
type FencerService struct {
	session *Session
}

func NewFencerService(session *Session) *FencerService {
	return &FencerService{session: session}
}

func (s *FencerService) All() ([]fencer.Data, error) {
	var out []fencer.Data
	err := s.session.Read(func(t *tournament.Tournament) error {
		out = t.AllFencers()
		return nil
	})
	return out, err
}

// Update merges roster records by identity
func (s *FencerService) Update(records []fencer.Record) (common.Diagnostics, error) {
	return s.session.Write("update_fencers", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.UpdateFencers(records), nil
	})
}

func (s *FencerService) Assign(fencerID uint32, group common.GroupID) (common.Diagnostics, error) {
	return s.session.Write("assign_fencer", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.AssignFencer(fencerID, group)
	})
}

func (s *FencerService) Remove(id uint32) (common.Diagnostics, error) {
	return s.session.Write("remove_fencer", func(t *tournament.Tournament) (common.Diagnostics, error) {
		return t.RemoveFencer(id), nil
	})
}
