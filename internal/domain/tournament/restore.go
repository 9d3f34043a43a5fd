package tournament

import (
	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/competition"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
)

// Snapshot is the acyclic, id-only form of a tournament
type Snapshot struct {
	Name    string
	Days    []schedule.DaySaveable
	Bewerbs []competition.BewerbSaveable
	Fencers []fencer.Saveable
}

// Snapshot captures the saveable form of every subgraph
func (t *Tournament) Snapshot() Snapshot {
	s := Snapshot{
		Name:    t.name,
		Days:    make([]schedule.DaySaveable, 0, t.days.Len()),
		Bewerbs: make([]competition.BewerbSaveable, 0, t.bewerbs.Len()),
		Fencers: make([]fencer.Saveable, 0, t.fencers.Len()),
	}
	for d := range t.days.All() {
		s.Days = append(s.Days, d.Saveable())
	}
	for b := range t.bewerbs.All() {
		s.Bewerbs = append(s.Bewerbs, b.Saveable())
	}
	for f := range t.fencers.All() {
		s.Fencers = append(s.Fencers, f.Saveable())
	}
	return s
}

// Restore rebuilds a live tournament in two phases. The owned hierarchies
// are built first; the recorded group/arena and fencer/group relationships
// are then replayed through the same operations used at runtime.
// Unresolvable relationships are reported and left unset.
func Restore(s Snapshot) (*Tournament, common.Diagnostics) {
	t := New(s.Name)
	var diags common.Diagnostics

	// only the records actually built take part in the resolve phase
	kept := Snapshot{Name: s.Name}
	for _, ds := range s.Days {
		if _, dup := t.days.Get(ds.ID); dup {
			diags.Add(common.WarnDuplicateID, "day %d appears twice, later copy skipped", ds.ID)
			continue
		}
		ds, d := ds.Dedup()
		diags.Merge(d)
		t.days.Insert(schedule.DayFromSaveable(ds))
		kept.Days = append(kept.Days, ds)
	}
	for _, bs := range s.Bewerbs {
		if _, dup := t.bewerbs.Get(bs.ID.BewerbID); dup {
			diags.Add(common.WarnDuplicateID, "event %s appears twice, later copy skipped", bs.ID)
			continue
		}
		bs, d := bs.Dedup()
		diags.Merge(d)
		t.bewerbs.Insert(competition.BewerbFromSaveable(bs))
		kept.Bewerbs = append(kept.Bewerbs, bs)
	}
	// fencers size their slots against the events, so they come after them
	for _, fs := range s.Fencers {
		if _, dup := t.fencers.Get(fs.ID); dup {
			diags.Add(common.WarnDuplicateID, "fencer %d appears twice, later copy skipped", fs.ID)
			continue
		}
		f, d := fencer.FromSaveable(fs, t)
		diags.Merge(d)
		t.fencers.Insert(f)
		kept.Fencers = append(kept.Fencers, fs)
	}

	diags.Merge(t.restoreArenas(kept))
	diags.Merge(t.restoreMembers(kept))
	return t, diags
}

func (t *Tournament) restoreArenas(s Snapshot) common.Diagnostics {
	var diags common.Diagnostics
	for _, bs := range s.Bewerbs {
		for _, rs := range bs.Rounds {
			for _, gs := range rs.Groups {
				if gs.Arena == nil {
					continue
				}
				arena, ok := t.Arena(*gs.Arena)
				if !ok {
					diags.Add(common.WarnUnresolvedArena, "group %s: arena %s not found", gs.ID, *gs.Arena)
					continue
				}
				if held, taken := arena.Group(); taken {
					diags.Add(common.WarnAssignmentClash, "group %s: arena %s already holds group %s", gs.ID, *gs.Arena, held)
					continue
				}
				d, err := t.AddGroupToArena(gs.ID, arena.FullID())
				diags.Merge(d)
				if err != nil {
					diags.Add(common.WarnUnresolvedGroup, "group %s: %v", gs.ID, err)
				}
			}
		}
	}

	// arena records are checked against what the groups produced
	for _, ds := range s.Days {
		for _, ts := range ds.Timeslots {
			for _, as := range ts.Arenas {
				if as.Group == nil {
					continue
				}
				arena, ok := t.Arena(as.ID)
				if !ok {
					continue
				}
				held, ok := arena.Group()
				if !ok || !held.SameAs(*as.Group) {
					diags.Add(common.WarnUnresolvedGroup, "arena %s: group %s was not restored", as.ID, *as.Group)
				}
			}
		}
	}
	return diags
}

func (t *Tournament) restoreMembers(s Snapshot) common.Diagnostics {
	var diags common.Diagnostics
	for _, fs := range s.Fencers {
		for _, bg := range fs.Bewerbs {
			b, ok := t.bewerbs.Get(bg.Bewerb.BewerbID)
			if !ok {
				continue
			}
			for slot, gid := range bg.Groups {
				if gid == nil {
					continue
				}
				if idx, ok := b.RoundIndex(gid.RoundID); ok && idx != slot {
					diags.Add(common.WarnRoundOutOfRange, "fencer %d: group %s stored in slot %d of round position %d", fs.ID, *gid, slot, idx)
				}
				d, err := t.AssignFencer(fs.ID, *gid)
				diags.Merge(d)
				if err != nil {
					diags.Add(common.WarnUnresolvedGroup, "fencer %d: %v", fs.ID, err)
				}
			}
		}
	}
	return diags
}
