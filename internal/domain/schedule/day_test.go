package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

func testDate(t *testing.T) Date {
	t.Helper()
	d, err := ParseDate("2024-05-18")
	require.NoError(t, err)
	return d
}

func TestNewDayBuildsTimeslotsAndArenas(t *testing.T) {
	day := NewDay(testDate(t), 3, 2)

	data := day.Data()
	require.Len(t, data.Timeslots, 3)
	for i, ts := range data.Timeslots {
		assert.Equal(t, uint32(i), ts.ID.TimeslotID)
		require.Len(t, ts.Arenas, 2)
		for j, arena := range ts.Arenas {
			assert.Equal(t, common.ArenaSlotID{DayID: 0, TimeslotID: uint32(i), ArenaSlotID: uint32(j)}, arena.ID)
			assert.Nil(t, arena.Group)
		}
	}

	count := 0
	for range day.Arenas() {
		count++
	}
	assert.Equal(t, 6, count)
}

func TestSetIDPropagatesToDescendants(t *testing.T) {
	day := NewDay(testDate(t), 2, 2)
	day.SetID(4)

	for ts := range day.Timeslots() {
		assert.Equal(t, uint32(4), ts.FullID().DayID)
		for arena := range ts.Arenas() {
			assert.Equal(t, uint32(4), arena.FullID().DayID)
			assert.Equal(t, ts.ID(), arena.FullID().TimeslotID)
		}
	}
}

func TestArenaLookup(t *testing.T) {
	day := NewDay(testDate(t), 3, 2)

	arena, ok := day.Arena(common.ArenaSlotID{TimeslotID: 2, ArenaSlotID: 1})
	require.True(t, ok)
	assert.Equal(t, common.ArenaSlotID{DayID: 0, TimeslotID: 2, ArenaSlotID: 1}, arena.FullID())

	_, ok = day.Arena(common.ArenaSlotID{TimeslotID: 3, ArenaSlotID: 0})
	assert.False(t, ok)
	_, ok = day.Arena(common.ArenaSlotID{TimeslotID: 0, ArenaSlotID: 2})
	assert.False(t, ok)
}

func TestArenaGroupAssignment(t *testing.T) {
	day := NewDay(testDate(t), 1, 1)
	arena, ok := day.Arena(common.ArenaSlotID{})
	require.True(t, ok)

	group := common.GroupID{BewerbName: "Epee", BewerbID: 1, RoundID: 0, GroupID: 2}
	arena.SetGroup(group)
	got, ok := arena.Group()
	require.True(t, ok)
	assert.Equal(t, group, got)
	assert.Equal(t, &group, arena.Data().Group)

	arena.ClearGroup()
	_, ok = arena.Group()
	assert.False(t, ok)
}

func TestDaySaveableRoundTrip(t *testing.T) {
	day := NewDay(testDate(t), 2, 3)
	day.SetID(1)
	arena, _ := day.Arena(common.ArenaSlotID{DayID: 1, TimeslotID: 1, ArenaSlotID: 2})
	arena.SetGroup(common.GroupID{BewerbName: "Foil", GroupID: 1})

	raw, err := json.Marshal(day.Saveable())
	require.NoError(t, err)

	var saved DaySaveable
	require.NoError(t, json.Unmarshal(raw, &saved))
	rebuilt := DayFromSaveable(saved)

	assert.Equal(t, day.Summary(), rebuilt.Summary())
	assert.Len(t, rebuilt.Data().Timeslots, 2)
	restored, ok := rebuilt.Arena(common.ArenaSlotID{DayID: 1, TimeslotID: 1, ArenaSlotID: 2})
	require.True(t, ok)
	_, assigned := restored.Group()
	assert.False(t, assigned, "build phase must not resolve assignments")
	assert.NotNil(t, saved.Timeslots[1].Arenas[2].Group)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2024, 5, 18, 13, 45, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-18"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"18.05.2024"`), &parsed))
}
