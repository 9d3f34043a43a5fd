package tournament

import "github.com/gravadigital/turnier-api/internal/domain/common"

// State is the lifecycle of the single tournament served by a process. It
// starts Uninitialized and becomes Loaded on create or load.
type State struct {
	current *Tournament
}

// Get returns the loaded tournament or common.ErrNotLoaded
func (s *State) Get() (*Tournament, error) {
	if s.current == nil {
		return nil, common.ErrNotLoaded
	}
	return s.current, nil
}

// Set replaces the loaded tournament
func (s *State) Set(t *Tournament) {
	s.current = t
}

// Loaded reports whether a tournament is present
func (s *State) Loaded() bool {
	return s.current != nil
}

// Reset returns to Uninitialized
func (s *State) Reset() {
	s.current = nil
}
