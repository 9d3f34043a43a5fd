package competition

import (
	"slices"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

// Group is a pool of fencers within a round. It records the id of its arena
// slot and the ids of its member fencers.
type Group struct {
	id      common.GroupID
	arena   *common.ArenaSlotID
	fencers []uint32
}

func newGroup(round common.RoundID) *Group {
	return &Group{id: common.GroupID{
		BewerbName: round.BewerbName,
		BewerbID:   round.BewerbID,
		RoundID:    round.RoundID,
	}}
}

func (g *Group) ID() uint32 {
	return g.id.GroupID
}

func (g *Group) SetID(id uint32) {
	g.id.GroupID = id
}

// FullID returns the composite id including event and round
func (g *Group) FullID() common.GroupID {
	return g.id
}

func (g *Group) setParent(round common.RoundID) {
	g.id.BewerbName = round.BewerbName
	g.id.BewerbID = round.BewerbID
	g.id.RoundID = round.RoundID
}

// Arena returns the assigned arena slot, if any
func (g *Group) Arena() (common.ArenaSlotID, bool) {
	if g.arena == nil {
		return common.ArenaSlotID{}, false
	}
	return *g.arena, true
}

// SetArena records the assigned arena slot
func (g *Group) SetArena(id common.ArenaSlotID) {
	g.arena = &id
}

// ClearArena unsets the assigned arena slot
func (g *Group) ClearArena() {
	g.arena = nil
}

// Fencers returns a copy of the member fencer ids
func (g *Group) Fencers() []uint32 {
	return slices.Clone(g.fencers)
}

// HasFencer reports membership
func (g *Group) HasFencer(fencerID uint32) bool {
	return slices.Contains(g.fencers, fencerID)
}

// AddFencer adds a member; adding twice is a no-op
func (g *Group) AddFencer(fencerID uint32) {
	if g.HasFencer(fencerID) {
		return
	}
	g.fencers = append(g.fencers, fencerID)
}

// RemoveFencer drops a member; removing a non-member is a no-op
func (g *Group) RemoveFencer(fencerID uint32) {
	g.fencers = slices.DeleteFunc(g.fencers, func(id uint32) bool { return id == fencerID })
}

// GroupData is the read view of a group
type GroupData struct {
	ID      common.GroupID      `json:"id"`
	Arena   *common.ArenaSlotID `json:"arena,omitempty"`
	Fencers []uint32            `json:"fencers"`
}

// Data returns the read view
func (g *Group) Data() GroupData {
	data := GroupData{ID: g.id, Fencers: g.Fencers()}
	if a, ok := g.Arena(); ok {
		data.Arena = &a
	}
	return data
}

// GroupSaveable stores the arena slot and members by id only
type GroupSaveable struct {
	ID      common.GroupID      `json:"id"`
	Arena   *common.ArenaSlotID `json:"arena"`
	Fencers []uint32            `json:"fencers"`
}

// Saveable returns the snapshot form
func (g *Group) Saveable() GroupSaveable {
	s := GroupSaveable{ID: g.id, Fencers: g.Fencers()}
	if a, ok := g.Arena(); ok {
		s.Arena = &a
	}
	if s.Fencers == nil {
		s.Fencers = []uint32{}
	}
	return s
}
