// Package fencer holds the fencer roster. Each fencer keeps, per event it
// takes part in, one group slot per round of that event.
package fencer

import (
	"fmt"
	"slices"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

// RoundLookup resolves an event id to its live id and round count
type RoundLookup interface {
	RoundCount(bewerbID uint32) (common.BewerbID, int, bool)
}

// BewerbGroups holds the group slots of one event, indexed by round position
type BewerbGroups struct {
	Bewerb common.BewerbID   `json:"bewerb_id"`
	Groups []*common.GroupID `json:"groups"`
}

func (bg BewerbGroups) clone() BewerbGroups {
	out := BewerbGroups{Bewerb: bg.Bewerb, Groups: make([]*common.GroupID, len(bg.Groups))}
	for i, g := range bg.Groups {
		if g != nil {
			id := *g
			out.Groups[i] = &id
		}
	}
	return out
}

// Fencer is a competitor
type Fencer struct {
	id      uint32
	name    string
	bewerbs []BewerbGroups
}

// Record is the roster-sync form of a fencer
type Record struct {
	ID      uint32            `json:"id"`
	Name    string            `json:"name"`
	Bewerbs []common.BewerbID `json:"bewerbs"`
}

// New creates a fencer with one empty slot array per event, sized to the
// event's round count. Unknown events are skipped with a warning.
func New(name string, bewerbs []common.BewerbID, lookup RoundLookup) (*Fencer, common.Diagnostics) {
	f := &Fencer{name: name}
	diags := f.seed(bewerbs, lookup)
	return f, diags
}

func (f *Fencer) seed(bewerbs []common.BewerbID, lookup RoundLookup) common.Diagnostics {
	var diags common.Diagnostics
	f.bewerbs = make([]BewerbGroups, 0, len(bewerbs))
	for _, b := range bewerbs {
		if f.slots(b.BewerbID) != nil {
			continue
		}
		live, rounds, ok := lookup.RoundCount(b.BewerbID)
		if !ok {
			diags.Add(common.WarnUnknownBewerb, "fencer %q: event %s not found, skipped", f.name, b)
			continue
		}
		f.bewerbs = append(f.bewerbs, BewerbGroups{Bewerb: live, Groups: make([]*common.GroupID, rounds)})
	}
	return diags
}

func (f *Fencer) ID() uint32 {
	return f.id
}

func (f *Fencer) SetID(id uint32) {
	f.id = id
}

func (f *Fencer) Name() string {
	return f.name
}

func (f *Fencer) slots(bewerbID uint32) *BewerbGroups {
	for i := range f.bewerbs {
		if f.bewerbs[i].Bewerb.BewerbID == bewerbID {
			return &f.bewerbs[i]
		}
	}
	return nil
}

// SlotCount returns the number of round slots held for an event
func (f *Fencer) SlotCount(bewerbID uint32) (int, bool) {
	s := f.slots(bewerbID)
	if s == nil {
		return 0, false
	}
	return len(s.Groups), true
}

// AddGroup places group into the slot at roundIndex of the group's event. It
// returns the group previously held in that slot when it differs, so the
// caller can drop the fencer from that group's member list.
func (f *Fencer) AddGroup(group common.GroupID, roundIndex int) (*common.GroupID, error) {
	s := f.slots(group.BewerbID)
	if s == nil {
		return nil, fmt.Errorf("%w: fencer %d is not registered for event %s", common.ErrInvalidInput, f.id, group.Bewerb())
	}
	if roundIndex < 0 || roundIndex >= len(s.Groups) {
		return nil, fmt.Errorf("%w: fencer %d has no slot for round %d of event %s", common.ErrInvalidInput, f.id, group.RoundID, group.Bewerb())
	}

	prev := s.Groups[roundIndex]
	s.Groups[roundIndex] = &group
	if prev != nil && !prev.SameAs(group) {
		return prev, nil
	}
	return nil, nil
}

// Groups returns every group the fencer is bound to
func (f *Fencer) Groups() []common.GroupID {
	var out []common.GroupID
	for _, bg := range f.bewerbs {
		for _, g := range bg.Groups {
			if g != nil {
				out = append(out, *g)
			}
		}
	}
	return out
}

// DropBewerb removes the slot array of an event and returns the groups it held
func (f *Fencer) DropBewerb(bewerbID uint32) []common.GroupID {
	var dropped []common.GroupID
	f.bewerbs = slices.DeleteFunc(f.bewerbs, func(bg BewerbGroups) bool {
		if bg.Bewerb.BewerbID != bewerbID {
			return false
		}
		for _, g := range bg.Groups {
			if g != nil {
				dropped = append(dropped, *g)
			}
		}
		return true
	})
	return dropped
}

// Update overwrites the name and resets the slot arrays to the events of
// rec. Existing per-round bindings are discarded.
func (f *Fencer) Update(rec Record, lookup RoundLookup) common.Diagnostics {
	f.name = rec.Name
	return f.seed(rec.Bewerbs, lookup)
}

// IsSame matches a roster record by id and name
func (f *Fencer) IsSame(rec Record) bool {
	return f.id == rec.ID && f.name == rec.Name
}

// Data is the read view of a fencer
type Data struct {
	ID      uint32         `json:"id"`
	Name    string         `json:"name"`
	Bewerbs []BewerbGroups `json:"bewerbs"`
}

// Data returns the read view
func (f *Fencer) Data() Data {
	d := Data{ID: f.id, Name: f.name, Bewerbs: make([]BewerbGroups, 0, len(f.bewerbs))}
	for _, bg := range f.bewerbs {
		d.Bewerbs = append(d.Bewerbs, bg.clone())
	}
	return d
}

// Saveable is the snapshot form of a fencer; groups are stored by id
type Saveable Data

// Saveable returns the snapshot form
func (f *Fencer) Saveable() Saveable {
	return Saveable(f.Data())
}

// FromSaveable rebuilds a fencer with empty slot arrays sized to the live
// events. Bindings are resolved by the caller.
func FromSaveable(s Saveable, lookup RoundLookup) (*Fencer, common.Diagnostics) {
	events := make([]common.BewerbID, 0, len(s.Bewerbs))
	for _, bg := range s.Bewerbs {
		events = append(events, bg.Bewerb)
	}
	f, diags := New(s.Name, events, lookup)
	f.id = s.ID
	return f, diags
}
