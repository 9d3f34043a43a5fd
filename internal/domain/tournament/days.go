package tournament

import (
	"fmt"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
)

// AddDay creates a day with its timeslots and arena slots and returns its id
func (t *Tournament) AddDay(spec schedule.Spec) (uint32, error) {
	if spec.Date.IsZero() {
		return 0, fmt.Errorf("%w: day date is required", common.ErrInvalidInput)
	}
	if spec.NumberTimeSlots == 0 || spec.NumberArenas == 0 {
		return 0, fmt.Errorf("%w: a day needs at least one timeslot and one arena", common.ErrInvalidInput)
	}
	return t.days.Push(schedule.NewDay(spec.Date, spec.NumberTimeSlots, spec.NumberArenas)), nil
}

// RemoveDay frees every group assigned to the day's arena slots, then
// deletes the day. Removing an unknown day is a no-op.
func (t *Tournament) RemoveDay(id uint32) common.Diagnostics {
	var diags common.Diagnostics
	day, ok := t.days.Get(id)
	if !ok {
		return diags
	}
	for arena := range day.Arenas() {
		diags.Merge(t.freeArena(arena))
	}
	t.days.Remove(id)
	return diags
}

// Day looks up a day by id
func (t *Tournament) Day(id uint32) (*schedule.Day, bool) {
	return t.days.Get(id)
}

// SimpleDays lists the day summaries in insertion order
func (t *Tournament) SimpleDays() []schedule.SimpleDay {
	out := make([]schedule.SimpleDay, 0, t.days.Len())
	for d := range t.days.All() {
		out = append(out, d.Summary())
	}
	return out
}

// DayData returns the full view of a day
func (t *Tournament) DayData(id uint32) (schedule.DayData, error) {
	d, ok := t.days.Get(id)
	if !ok {
		return schedule.DayData{}, fmt.Errorf("%w: day %d not found", common.ErrInvalidInput, id)
	}
	return d.Data(), nil
}

// Arena resolves an arena slot through its day
func (t *Tournament) Arena(id common.ArenaSlotID) (*schedule.ArenaSlot, bool) {
	d, ok := t.days.Get(id.DayID)
	if !ok {
		return nil, false
	}
	return d.Arena(id)
}
