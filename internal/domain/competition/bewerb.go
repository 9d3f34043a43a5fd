// Package competition holds the competition graph: an event (Bewerb) owns
// rounds, rounds own groups. Groups are the units assigned to arena slots
// and into which fencers are placed.
package competition

import (
	"iter"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/container"
)

// Bewerb is one competition (event) of the tournament
type Bewerb struct {
	id      common.BewerbID
	nGroups uint32
	rounds  *container.UidContainer[*Round]
}

// NewBewerb builds nRounds rounds with nGroups groups each. The event id is
// assigned when the event is pushed into the tournament.
func NewBewerb(name string, nRounds, nGroups uint32) *Bewerb {
	b := &Bewerb{
		id:      common.BewerbID{BewerbName: name},
		nGroups: nGroups,
		rounds:  container.New[*Round](),
	}
	for range nRounds {
		b.rounds.Push(newRound(b.id, nGroups))
	}
	return b
}

func (b *Bewerb) ID() uint32 {
	return b.id.BewerbID
}

// SetID renumbers the event and every round and group below it
func (b *Bewerb) SetID(id uint32) {
	b.id.BewerbID = id
	for r := range b.rounds.All() {
		r.setBewerb(b.id)
	}
}

// FullID returns the id with the event name
func (b *Bewerb) FullID() common.BewerbID {
	return b.id
}

func (b *Bewerb) Name() string {
	return b.id.BewerbName
}

// NumRounds returns the number of rounds
func (b *Bewerb) NumRounds() int {
	return b.rounds.Len()
}

// Rounds iterates the rounds in order
func (b *Bewerb) Rounds() iter.Seq[*Round] {
	return b.rounds.All()
}

// Round looks up a round by id
func (b *Bewerb) Round(roundID uint32) (*Round, bool) {
	return b.rounds.Get(roundID)
}

// RoundIndex returns the position of a round in round order, used to index
// a fencer's per-round slots.
func (b *Bewerb) RoundIndex(roundID uint32) (int, bool) {
	i := 0
	for r := range b.rounds.All() {
		if r.ID() == roundID {
			return i, true
		}
		i++
	}
	return 0, false
}

// Group resolves round then group. The event id of the argument is not checked.
func (b *Bewerb) Group(id common.GroupID) (*Group, bool) {
	r, ok := b.rounds.Get(id.RoundID)
	if !ok {
		return nil, false
	}
	return r.Group(id.GroupID)
}

// AllGroups flattens every group id across all rounds
func (b *Bewerb) AllGroups() []common.GroupID {
	var ids []common.GroupID
	for r := range b.rounds.All() {
		ids = append(ids, r.AllGroups()...)
	}
	return ids
}

// FreeGroups returns the ids of groups without an arena slot
func (b *Bewerb) FreeGroups() []common.GroupID {
	var ids []common.GroupID
	for r := range b.rounds.All() {
		ids = append(ids, r.FreeGroups()...)
	}
	return ids
}

// SimpleBewerb is the summary view of an event
type SimpleBewerb struct {
	ID      common.BewerbID `json:"id"`
	NRounds uint32          `json:"n_rounds"`
	NGroups uint32          `json:"n_groups"`
}

// Summary returns the summary view
func (b *Bewerb) Summary() SimpleBewerb {
	return SimpleBewerb{ID: b.id, NRounds: uint32(b.rounds.Len()), NGroups: b.nGroups}
}

// BewerbSaveable is the snapshot form of an event
type BewerbSaveable struct {
	ID      common.BewerbID `json:"id"`
	NGroups uint32          `json:"n_groups"`
	Rounds  []RoundSaveable `json:"rounds"`
}

// Saveable returns the snapshot form
func (b *Bewerb) Saveable() BewerbSaveable {
	s := BewerbSaveable{ID: b.id, NGroups: b.nGroups, Rounds: make([]RoundSaveable, 0, b.rounds.Len())}
	for r := range b.rounds.All() {
		s.Rounds = append(s.Rounds, r.Saveable())
	}
	return s
}

// BewerbFromSaveable rebuilds the owned hierarchy. Arena slots and members
// are left unset; the caller resolves them after every subgraph is built.
func BewerbFromSaveable(s BewerbSaveable) *Bewerb {
	b := &Bewerb{id: s.ID, nGroups: s.NGroups, rounds: container.New[*Round]()}
	for _, rs := range s.Rounds {
		b.rounds.Insert(roundFromSaveable(rs))
	}
	b.SetID(s.ID.BewerbID)
	return b
}

// Dedup drops round and group records whose id repeats within their
// parent, keeping the first copy
func (s BewerbSaveable) Dedup() (BewerbSaveable, common.Diagnostics) {
	var diags common.Diagnostics
	out := s
	out.Rounds = make([]RoundSaveable, 0, len(s.Rounds))
	seenRound := make(map[uint32]bool, len(s.Rounds))
	for _, rs := range s.Rounds {
		if seenRound[rs.ID.RoundID] {
			diags.Add(common.WarnDuplicateID, "event %s: round %d appears twice, later copy skipped", s.ID, rs.ID.RoundID)
			continue
		}
		seenRound[rs.ID.RoundID] = true

		kept := RoundSaveable{ID: rs.ID, Groups: make([]GroupSaveable, 0, len(rs.Groups))}
		seenGroup := make(map[uint32]bool, len(rs.Groups))
		for _, gs := range rs.Groups {
			if seenGroup[gs.ID.GroupID] {
				diags.Add(common.WarnDuplicateID, "event %s: group %s appears twice, later copy skipped", s.ID, gs.ID)
				continue
			}
			seenGroup[gs.ID.GroupID] = true
			kept.Groups = append(kept.Groups, gs)
		}
		out.Rounds = append(out.Rounds, kept)
	}
	return out, diags
}
