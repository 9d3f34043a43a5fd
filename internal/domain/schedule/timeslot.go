package schedule

import (
	"iter"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/container"
)

// Timeslot is a time window within a day, owning one arena slot per arena
type Timeslot struct {
	id     common.TimeslotID
	arenas *container.UidContainer[*ArenaSlot]
}

func newTimeslot(id common.TimeslotID, nArenas uint32) *Timeslot {
	ts := &Timeslot{id: id, arenas: container.New[*ArenaSlot]()}
	for i := range nArenas {
		ts.arenas.Insert(newArenaSlot(common.ArenaSlotID{
			DayID:       id.DayID,
			TimeslotID:  id.TimeslotID,
			ArenaSlotID: i,
		}))
	}
	return ts
}

func (t *Timeslot) ID() uint32 {
	return t.id.TimeslotID
}

// SetID renumbers the timeslot and every arena slot below it
func (t *Timeslot) SetID(id uint32) {
	t.id.TimeslotID = id
	t.propagate()
}

func (t *Timeslot) setDayID(dayID uint32) {
	t.id.DayID = dayID
	t.propagate()
}

func (t *Timeslot) propagate() {
	for arena := range t.arenas.All() {
		arena.setParent(t.id)
	}
}

// FullID returns the composite id including the day
func (t *Timeslot) FullID() common.TimeslotID {
	return t.id
}

// Arena looks up an arena slot by its arena id
func (t *Timeslot) Arena(arenaID uint32) (*ArenaSlot, bool) {
	return t.arenas.Get(arenaID)
}

// Arenas iterates the arena slots in order
func (t *Timeslot) Arenas() iter.Seq[*ArenaSlot] {
	return t.arenas.All()
}

// TimeslotData is the read view of a timeslot
type TimeslotData struct {
	ID     common.TimeslotID `json:"id"`
	Arenas []ArenaData       `json:"arenas"`
}

// Data returns the read view
func (t *Timeslot) Data() TimeslotData {
	data := TimeslotData{ID: t.id, Arenas: make([]ArenaData, 0, t.arenas.Len())}
	for arena := range t.arenas.All() {
		data.Arenas = append(data.Arenas, arena.Data())
	}
	return data
}

// TimeslotSaveable is the snapshot form of a timeslot
type TimeslotSaveable struct {
	ID     common.TimeslotID   `json:"id"`
	Arenas []ArenaSlotSaveable `json:"arenas"`
}

// Saveable returns the snapshot form
func (t *Timeslot) Saveable() TimeslotSaveable {
	s := TimeslotSaveable{ID: t.id, Arenas: make([]ArenaSlotSaveable, 0, t.arenas.Len())}
	for arena := range t.arenas.All() {
		s.Arenas = append(s.Arenas, arena.Saveable())
	}
	return s
}

func timeslotFromSaveable(s TimeslotSaveable) *Timeslot {
	ts := &Timeslot{id: s.ID, arenas: container.New[*ArenaSlot]()}
	for _, a := range s.Arenas {
		ts.arenas.Insert(newArenaSlot(a.ID))
	}
	ts.propagate()
	return ts
}
