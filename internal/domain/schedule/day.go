// Package schedule holds the scheduling graph: days own timeslots, timeslots
// own arena slots. Groups are assigned into arena slots by id.
package schedule

import (
	"iter"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/container"
)

// Day is a calendar day of the tournament
type Day struct {
	id         uint32
	date       Date
	nTimeslots uint32
	nArenas    uint32
	timeslots  *container.UidContainer[*Timeslot]
}

// NewDay builds nTimeslots timeslots, each with nArenas arena slots.
// Child ids come from the loop index, not the allocator.
func NewDay(date Date, nTimeslots, nArenas uint32) *Day {
	d := &Day{
		date:       date,
		nTimeslots: nTimeslots,
		nArenas:    nArenas,
		timeslots:  container.New[*Timeslot](),
	}
	for i := range nTimeslots {
		d.timeslots.Insert(newTimeslot(common.TimeslotID{DayID: d.id, TimeslotID: i}, nArenas))
	}
	return d
}

func (d *Day) ID() uint32 {
	return d.id
}

// SetID renumbers the day and every timeslot and arena slot below it
func (d *Day) SetID(id uint32) {
	d.id = id
	for ts := range d.timeslots.All() {
		ts.setDayID(id)
	}
}

func (d *Day) Date() Date {
	return d.date
}

// Timeslots iterates the timeslots in order
func (d *Day) Timeslots() iter.Seq[*Timeslot] {
	return d.timeslots.All()
}

// Arenas iterates every arena slot of the day
func (d *Day) Arenas() iter.Seq[*ArenaSlot] {
	return func(yield func(*ArenaSlot) bool) {
		for ts := range d.timeslots.All() {
			for arena := range ts.Arenas() {
				if !yield(arena) {
					return
				}
			}
		}
	}
}

// Arena resolves timeslot then arena. The day id of the argument is not checked.
func (d *Day) Arena(id common.ArenaSlotID) (*ArenaSlot, bool) {
	ts, ok := d.timeslots.Get(id.TimeslotID)
	if !ok {
		return nil, false
	}
	return ts.Arena(id.ArenaSlotID)
}

// Spec is the input for creating a day
type Spec struct {
	Date            Date   `json:"date"`
	NumberTimeSlots uint32 `json:"number_time_slots"`
	NumberArenas    uint32 `json:"number_arenas"`
}

// SimpleDay is the summary view of a day
type SimpleDay struct {
	ID              uint32 `json:"id"`
	Date            Date   `json:"date"`
	NumberTimeSlots uint32 `json:"number_time_slots"`
	NumberArenas    uint32 `json:"number_arenas"`
}

// Summary returns the summary view
func (d *Day) Summary() SimpleDay {
	return SimpleDay{
		ID:              d.id,
		Date:            d.date,
		NumberTimeSlots: d.nTimeslots,
		NumberArenas:    d.nArenas,
	}
}

// DayData is the full read view of a day
type DayData struct {
	ID        uint32         `json:"id"`
	Date      Date           `json:"date"`
	Timeslots []TimeslotData `json:"timeslots"`
}

// Data returns the full read view
func (d *Day) Data() DayData {
	data := DayData{ID: d.id, Date: d.date, Timeslots: make([]TimeslotData, 0, d.timeslots.Len())}
	for ts := range d.timeslots.All() {
		data.Timeslots = append(data.Timeslots, ts.Data())
	}
	return data
}

// DaySaveable is the snapshot form of a day
type DaySaveable struct {
	ID              uint32             `json:"id"`
	Date            Date               `json:"date"`
	NumberTimeSlots uint32             `json:"number_time_slots"`
	NumberArenas    uint32             `json:"number_arenas"`
	Timeslots       []TimeslotSaveable `json:"timeslots"`
}

// Saveable returns the snapshot form
func (d *Day) Saveable() DaySaveable {
	s := DaySaveable{
		ID:              d.id,
		Date:            d.date,
		NumberTimeSlots: d.nTimeslots,
		NumberArenas:    d.nArenas,
		Timeslots:       make([]TimeslotSaveable, 0, d.timeslots.Len()),
	}
	for ts := range d.timeslots.All() {
		s.Timeslots = append(s.Timeslots, ts.Saveable())
	}
	return s
}

// DayFromSaveable rebuilds the owned hierarchy. Arena assignments are left
// unset; the caller resolves them once every subgraph is built.
func DayFromSaveable(s DaySaveable) *Day {
	d := &Day{
		date:       s.Date,
		nTimeslots: s.NumberTimeSlots,
		nArenas:    s.NumberArenas,
		timeslots:  container.New[*Timeslot](),
	}
	for _, ts := range s.Timeslots {
		d.timeslots.Insert(timeslotFromSaveable(ts))
	}
	d.SetID(s.ID)
	return d
}

// Dedup drops timeslot and arena records whose id repeats within their
// parent, keeping the first copy
func (s DaySaveable) Dedup() (DaySaveable, common.Diagnostics) {
	var diags common.Diagnostics
	out := s
	out.Timeslots = make([]TimeslotSaveable, 0, len(s.Timeslots))
	seenTs := make(map[uint32]bool, len(s.Timeslots))
	for _, ts := range s.Timeslots {
		if seenTs[ts.ID.TimeslotID] {
			diags.Add(common.WarnDuplicateID, "day %d: timeslot %d appears twice, later copy skipped", s.ID, ts.ID.TimeslotID)
			continue
		}
		seenTs[ts.ID.TimeslotID] = true

		kept := TimeslotSaveable{ID: ts.ID, Arenas: make([]ArenaSlotSaveable, 0, len(ts.Arenas))}
		seenArena := make(map[uint32]bool, len(ts.Arenas))
		for _, a := range ts.Arenas {
			if seenArena[a.ID.ArenaSlotID] {
				diags.Add(common.WarnDuplicateID, "day %d: arena %s appears twice, later copy skipped", s.ID, a.ID)
				continue
			}
			seenArena[a.ID.ArenaSlotID] = true
			kept.Arenas = append(kept.Arenas, a)
		}
		out.Timeslots = append(out.Timeslots, kept)
	}
	return out, diags
}
