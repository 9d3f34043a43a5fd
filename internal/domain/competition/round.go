package competition

import (
	"iter"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/container"
)

// Round is one phase of an event
type Round struct {
	id     common.RoundID
	groups *container.UidContainer[*Group]
}

func newRound(bewerb common.BewerbID, nGroups uint32) *Round {
	r := &Round{
		id:     common.RoundID{BewerbName: bewerb.BewerbName, BewerbID: bewerb.BewerbID},
		groups: container.New[*Group](),
	}
	for range nGroups {
		r.groups.Push(newGroup(r.id))
	}
	return r
}

func (r *Round) ID() uint32 {
	return r.id.RoundID
}

// SetID renumbers the round and its groups
func (r *Round) SetID(id uint32) {
	r.id.RoundID = id
	r.propagate()
}

func (r *Round) setBewerb(bewerb common.BewerbID) {
	r.id.BewerbName = bewerb.BewerbName
	r.id.BewerbID = bewerb.BewerbID
	r.propagate()
}

func (r *Round) propagate() {
	for g := range r.groups.All() {
		g.setParent(r.id)
	}
}

// FullID returns the composite id including the event
func (r *Round) FullID() common.RoundID {
	return r.id
}

// Group looks up a group by its group id
func (r *Round) Group(groupID uint32) (*Group, bool) {
	return r.groups.Get(groupID)
}

// Groups iterates the groups in order
func (r *Round) Groups() iter.Seq[*Group] {
	return r.groups.All()
}

// AllGroups returns the ids of every group of the round
func (r *Round) AllGroups() []common.GroupID {
	ids := make([]common.GroupID, 0, r.groups.Len())
	for g := range r.groups.All() {
		ids = append(ids, g.FullID())
	}
	return ids
}

// FreeGroups returns the ids of groups without an arena slot
func (r *Round) FreeGroups() []common.GroupID {
	var ids []common.GroupID
	for g := range r.groups.All() {
		if _, assigned := g.Arena(); !assigned {
			ids = append(ids, g.FullID())
		}
	}
	return ids
}

// RoundSaveable is the snapshot form of a round
type RoundSaveable struct {
	ID     common.RoundID  `json:"id"`
	Groups []GroupSaveable `json:"groups"`
}

// Saveable returns the snapshot form
func (r *Round) Saveable() RoundSaveable {
	s := RoundSaveable{ID: r.id, Groups: make([]GroupSaveable, 0, r.groups.Len())}
	for g := range r.groups.All() {
		s.Groups = append(s.Groups, g.Saveable())
	}
	return s
}

func roundFromSaveable(s RoundSaveable) *Round {
	r := &Round{id: s.ID, groups: container.New[*Group]()}
	for _, gs := range s.Groups {
		r.groups.Insert(&Group{id: gs.ID})
	}
	r.propagate()
	return r
}
