package tournament

import (
	"fmt"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
)

// AllFencers lists the fencers in insertion order
func (t *Tournament) AllFencers() []fencer.Data {
	out := make([]fencer.Data, 0, t.fencers.Len())
	for f := range t.fencers.All() {
		out = append(out, f.Data())
	}
	return out
}

// Fencer looks up a fencer by id
func (t *Tournament) Fencer(id uint32) (*fencer.Fencer, bool) {
	return t.fencers.Get(id)
}

// UpdateFencers merges roster records by identity. A record matching an
// existing fencer by id and name updates it in place, discarding its group
// bindings; any other record creates a new fencer.
func (t *Tournament) UpdateFencers(records []fencer.Record) common.Diagnostics {
	var diags common.Diagnostics
	for _, rec := range records {
		if f, ok := t.fencers.FindSame(rec); ok {
			diags.Merge(t.leaveGroups(f))
			diags.Merge(f.Update(rec, t))
			continue
		}
		f, d := fencer.New(rec.Name, rec.Bewerbs, t)
		diags.Merge(d)
		t.fencers.Push(f)
	}
	return diags
}

// AssignFencer places a fencer into a group, taking the slot of the group's
// round. A different group previously in that slot loses the fencer.
func (t *Tournament) AssignFencer(fencerID uint32, groupID common.GroupID) (common.Diagnostics, error) {
	f, ok := t.fencers.Get(fencerID)
	if !ok {
		return nil, fmt.Errorf("%w: fencer %d not found", common.ErrInvalidInput, fencerID)
	}
	b, ok := t.bewerbs.Get(groupID.BewerbID)
	if !ok {
		return nil, fmt.Errorf("%w: event %d not found", common.ErrInvalidInput, groupID.BewerbID)
	}
	group, ok := b.Group(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: group %s not found", common.ErrInvalidInput, groupID)
	}
	idx, ok := b.RoundIndex(groupID.RoundID)
	if !ok {
		return nil, fmt.Errorf("%w: round %s not found", common.ErrInvalidInput, groupID.Round())
	}

	var diags common.Diagnostics
	prev, err := f.AddGroup(group.FullID(), idx)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		if old, ok := t.Group(*prev); ok {
			old.RemoveFencer(fencerID)
		} else {
			diags.Add(common.WarnStaleGroup, "fencer %d referenced missing group %s", fencerID, *prev)
		}
	}
	group.AddFencer(fencerID)
	return diags, nil
}

// RemoveFencer deletes a fencer and its group memberships. Removing an
// unknown fencer is a no-op.
func (t *Tournament) RemoveFencer(id uint32) common.Diagnostics {
	f, ok := t.fencers.Get(id)
	if !ok {
		return nil
	}
	diags := t.leaveGroups(f)
	t.fencers.Remove(id)
	return diags
}

func (t *Tournament) leaveGroups(f *fencer.Fencer) common.Diagnostics {
	var diags common.Diagnostics
	for _, gid := range f.Groups() {
		g, ok := t.Group(gid)
		if !ok {
			diags.Add(common.WarnStaleGroup, "fencer %d referenced missing group %s", f.ID(), gid)
			continue
		}
		g.RemoveFencer(f.ID())
	}
	return diags
}
