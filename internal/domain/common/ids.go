package common

import "fmt"

// TimeslotID addresses a timeslot within a day
type TimeslotID struct {
	DayID      uint32 `json:"day_id"`
	TimeslotID uint32 `json:"timeslot_id"`
}

func (id TimeslotID) String() string {
	return fmt.Sprintf("day=%d ts=%d", id.DayID, id.TimeslotID)
}

// ArenaSlotID addresses one physical arena during one timeslot of one day
type ArenaSlotID struct {
	DayID       uint32 `json:"day_id"`
	TimeslotID  uint32 `json:"timeslot_id"`
	ArenaSlotID uint32 `json:"arena_slot_id"`
}

// Timeslot returns the id of the owning timeslot
func (id ArenaSlotID) Timeslot() TimeslotID {
	return TimeslotID{DayID: id.DayID, TimeslotID: id.TimeslotID}
}

func (id ArenaSlotID) String() string {
	return fmt.Sprintf("day=%d ts=%d arena=%d", id.DayID, id.TimeslotID, id.ArenaSlotID)
}

// BewerbID identifies an event. The name is denormalized into every child id.
type BewerbID struct {
	BewerbName string `json:"bewerb_name"`
	BewerbID   uint32 `json:"bewerb_id"`
}

func (id BewerbID) String() string {
	return fmt.Sprintf("%s(%d)", id.BewerbName, id.BewerbID)
}

// RoundID addresses a round within an event
type RoundID struct {
	BewerbName string `json:"bewerb_name"`
	BewerbID   uint32 `json:"bewerb_id"`
	RoundID    uint32 `json:"round_id"`
}

// Bewerb returns the id of the owning event
func (id RoundID) Bewerb() BewerbID {
	return BewerbID{BewerbName: id.BewerbName, BewerbID: id.BewerbID}
}

func (id RoundID) String() string {
	return fmt.Sprintf("%s(%d) round=%d", id.BewerbName, id.BewerbID, id.RoundID)
}

// GroupID addresses a group within a round of an event
type GroupID struct {
	BewerbName string `json:"bewerb_name"`
	BewerbID   uint32 `json:"bewerb_id"`
	RoundID    uint32 `json:"round_id"`
	GroupID    uint32 `json:"group_id"`
}

// Round returns the id of the owning round
func (id GroupID) Round() RoundID {
	return RoundID{BewerbName: id.BewerbName, BewerbID: id.BewerbID, RoundID: id.RoundID}
}

// Bewerb returns the id of the owning event
func (id GroupID) Bewerb() BewerbID {
	return BewerbID{BewerbName: id.BewerbName, BewerbID: id.BewerbID}
}

// SameAs compares the numeric path only; the event name is informational.
func (id GroupID) SameAs(other GroupID) bool {
	return id.BewerbID == other.BewerbID && id.RoundID == other.RoundID && id.GroupID == other.GroupID
}

func (id GroupID) String() string {
	return fmt.Sprintf("%s(%d) round=%d group=%d", id.BewerbName, id.BewerbID, id.RoundID, id.GroupID)
}
