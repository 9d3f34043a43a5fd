package tournament

import (
	"fmt"
	"strings"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/competition"
)

// AddBewerb creates an event with nRounds rounds of nGroups groups each
func (t *Tournament) AddBewerb(name string, nRounds, nGroups uint32) (common.BewerbID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.BewerbID{}, fmt.Errorf("%w: event name is required", common.ErrInvalidInput)
	}
	if nRounds == 0 || nGroups == 0 {
		return common.BewerbID{}, fmt.Errorf("%w: an event needs at least one round and one group", common.ErrInvalidInput)
	}
	b := competition.NewBewerb(name, nRounds, nGroups)
	t.bewerbs.Push(b)
	return b.FullID(), nil
}

// RemoveBewerb frees every group of the event, drops the event from every
// fencer, then deletes it. Removing an unknown event is a no-op.
func (t *Tournament) RemoveBewerb(id uint32) common.Diagnostics {
	var diags common.Diagnostics
	b, ok := t.bewerbs.Get(id)
	if !ok {
		return diags
	}
	for _, g := range b.AllGroups() {
		// best effort; the event is deleted regardless
		d, _ := t.FreeUpGroup(g)
		diags.Merge(d)
	}
	for f := range t.fencers.All() {
		f.DropBewerb(id)
	}
	t.bewerbs.Remove(id)
	return diags
}

// Bewerb looks up an event by id
func (t *Tournament) Bewerb(id uint32) (*competition.Bewerb, bool) {
	return t.bewerbs.Get(id)
}

// Bewerbs lists the event summaries in insertion order
func (t *Tournament) Bewerbs() []competition.SimpleBewerb {
	out := make([]competition.SimpleBewerb, 0, t.bewerbs.Len())
	for b := range t.bewerbs.All() {
		out = append(out, b.Summary())
	}
	return out
}

// Group resolves a group through its event
func (t *Tournament) Group(id common.GroupID) (*competition.Group, bool) {
	b, ok := t.bewerbs.Get(id.BewerbID)
	if !ok {
		return nil, false
	}
	return b.Group(id)
}

// AllFreeGroups lists every group without an arena slot across all events
func (t *Tournament) AllFreeGroups() []common.GroupID {
	out := []common.GroupID{}
	for b := range t.bewerbs.All() {
		out = append(out, b.FreeGroups()...)
	}
	return out
}

// RoundCount implements fencer.RoundLookup against the live events
func (t *Tournament) RoundCount(bewerbID uint32) (common.BewerbID, int, bool) {
	b, ok := t.bewerbs.Get(bewerbID)
	if !ok {
		return common.BewerbID{}, 0, false
	}
	return b.FullID(), b.NumRounds(), true
}
