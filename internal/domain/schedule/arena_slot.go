package schedule

import "github.com/gravadigital/turnier-api/internal/domain/common"

// ArenaSlot is one physical competition area during one timeslot.
// It records the id of the group assigned to it, never a pointer.
type ArenaSlot struct {
	id    common.ArenaSlotID
	group *common.GroupID
}

func newArenaSlot(id common.ArenaSlotID) *ArenaSlot {
	return &ArenaSlot{id: id}
}

func (a *ArenaSlot) ID() uint32 {
	return a.id.ArenaSlotID
}

func (a *ArenaSlot) SetID(id uint32) {
	a.id.ArenaSlotID = id
}

// FullID returns the composite id including day and timeslot
func (a *ArenaSlot) FullID() common.ArenaSlotID {
	return a.id
}

func (a *ArenaSlot) setParent(ts common.TimeslotID) {
	a.id.DayID = ts.DayID
	a.id.TimeslotID = ts.TimeslotID
}

// Group returns the assigned group, if any
func (a *ArenaSlot) Group() (common.GroupID, bool) {
	if a.group == nil {
		return common.GroupID{}, false
	}
	return *a.group, true
}

// SetGroup records the assigned group. Only the assignment engine keeps both sides in sync.
func (a *ArenaSlot) SetGroup(id common.GroupID) {
	a.group = &id
}

// ClearGroup unsets the assigned group
func (a *ArenaSlot) ClearGroup() {
	a.group = nil
}

// ArenaData is the read view of an arena slot
type ArenaData struct {
	ID    common.ArenaSlotID `json:"id"`
	Group *common.GroupID    `json:"group,omitempty"`
}

// Data returns the read view
func (a *ArenaSlot) Data() ArenaData {
	data := ArenaData{ID: a.id}
	if g, ok := a.Group(); ok {
		data.Group = &g
	}
	return data
}

// ArenaSlotSaveable stores the assignment by id only
type ArenaSlotSaveable struct {
	ID    common.ArenaSlotID `json:"id"`
	Group *common.GroupID    `json:"group"`
}

// Saveable returns the snapshot form
func (a *ArenaSlot) Saveable() ArenaSlotSaveable {
	s := ArenaSlotSaveable{ID: a.id}
	if g, ok := a.Group(); ok {
		s.Group = &g
	}
	return s
}
