package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
	"github.com/gravadigital/turnier-api/internal/metrics"
	"github.com/gravadigital/turnier-api/internal/snapshot"
	"github.com/gravadigital/turnier-api/internal/storage"
)

type fixture struct {
	store      *storage.MemoryStore
	metrics    *metrics.Metrics
	tournament *TournamentService
	fencers    *FencerService
}

func newFixture() *fixture {
	m := metrics.New()
	store := storage.NewMemoryStore()
	session := NewSession(m)
	return &fixture{
		store:      store,
		metrics:    m,
		tournament: NewTournamentService(session, store, m, "default"),
		fencers:    NewFencerService(session),
	}
}

func spec(nTs, nArenas uint32) schedule.Spec {
	return schedule.Spec{
		Date:            schedule.NewDate(time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC)),
		NumberTimeSlots: nTs,
		NumberArenas:    nArenas,
	}
}

func TestOperationsBeforeLoadFail(t *testing.T) {
	f := newFixture()

	_, err := f.tournament.SimpleDays()
	assert.ErrorIs(t, err, common.ErrNotLoaded)
	_, err = f.tournament.AddDay(spec(1, 1))
	assert.ErrorIs(t, err, common.ErrNotLoaded)
	_, err = f.fencers.All()
	assert.ErrorIs(t, err, common.ErrNotLoaded)
	_, err = f.tournament.Save(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrNotLoaded)
	assert.ErrorIs(t, f.tournament.ChangeName("x"), common.ErrNotLoaded)
}

func TestCreateRequiresName(t *testing.T) {
	f := newFixture()

	_, err := f.tournament.Create(" ")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	summary, err := f.tournament.Create("Spring Open")
	require.NoError(t, err)
	assert.Equal(t, "Spring Open", summary.Name)
}

func TestAssignmentFlowAndMetrics(t *testing.T) {
	f := newFixture()
	_, err := f.tournament.Create("Open")
	require.NoError(t, err)

	dayID, err := f.tournament.AddDay(spec(1, 2))
	require.NoError(t, err)
	b, err := f.tournament.AddBewerb("Epee", 1, 2)
	require.NoError(t, err)

	g := common.GroupID{BewerbName: b.BewerbName, BewerbID: b.BewerbID}
	a := common.ArenaSlotID{DayID: dayID, ArenaSlotID: 1}
	_, err = f.tournament.AddGroupToArena(g, a)
	require.NoError(t, err)

	free, err := f.tournament.FreeGroups()
	require.NoError(t, err)
	assert.NotContains(t, free, g)

	_, err = f.tournament.AddGroupToArena(g, common.ArenaSlotID{DayID: 9})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = f.tournament.FreeUpArena(a)
	require.NoError(t, err)
	free, err = f.tournament.FreeGroups()
	require.NoError(t, err)
	assert.Contains(t, free, g)

	// create, add_day, add_bewerb, free_up_arena and both outcomes of add_group_to_arena
	series, err := testutil.GatherAndCount(f.metrics.Registry(), "turnier_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 6, series)
}

func TestRosterFlow(t *testing.T) {
	f := newFixture()
	_, err := f.tournament.Create("Open")
	require.NoError(t, err)
	b, err := f.tournament.AddBewerb("Sabre", 1, 1)
	require.NoError(t, err)

	diags, err := f.fencers.Update([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{b, {BewerbID: 7}}}})
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, common.WarnUnknownBewerb, diags[0].Code)

	_, err = f.fencers.Assign(0, common.GroupID{BewerbName: "Sabre", BewerbID: b.BewerbID})
	require.NoError(t, err)

	all, err := f.fencers.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Bewerbs[0].Groups[0])

	_, err = f.fencers.Remove(0)
	require.NoError(t, err)
	all, err = f.fencers.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.tournament.Create("Open")
	require.NoError(t, err)
	_, err = f.tournament.AddDay(spec(2, 2))
	require.NoError(t, err)

	meta, err := f.tournament.Save(ctx, "")
	require.NoError(t, err)

	other := newFixture()
	other.tournament.store = f.store
	result, diags, err := other.tournament.Load(ctx, "default")
	require.NoError(t, err)
	assert.True(t, diags.Empty())
	assert.Equal(t, meta.Revision, result.Metadata.Revision)
	assert.Equal(t, 1, result.Summary.Days)

	_, _, err = other.tournament.Load(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
	days, err := other.tournament.SimpleDays()
	require.NoError(t, err)
	assert.Len(t, days, 1, "a failed load keeps the current tournament")
}

func TestExportDay(t *testing.T) {
	f := newFixture()
	_, err := f.tournament.Create("Open")
	require.NoError(t, err)
	id, err := f.tournament.AddDay(spec(1, 1))
	require.NoError(t, err)

	data, date, err := f.tournament.ExportDay(id)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "2026-06-06", date.String())

	_, _, err = f.tournament.ExportDay(42)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestAutosave(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		f.tournament.RunAutosave(ctx, 10*time.Millisecond)
		close(done)
	}()

	// nothing loaded yet: ticks are skipped
	time.Sleep(30 * time.Millisecond)
	_, err := snapshot.ReadMetadata(context.Background(), f.store, "default")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	_, err = f.tournament.Create("Open")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := snapshot.ReadMetadata(context.Background(), f.store, "default")
		return err == nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestConcurrentMutationsAndReads(t *testing.T) {
	f := newFixture()
	_, err := f.tournament.Create("Open")
	require.NoError(t, err)
	dayID, err := f.tournament.AddDay(spec(4, 4))
	require.NoError(t, err)
	b, err := f.tournament.AddBewerb("Epee", 2, 8)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			g := common.GroupID{BewerbName: b.BewerbName, BewerbID: b.BewerbID, RoundID: uint32(i % 2), GroupID: uint32(i % 8)}
			a := common.ArenaSlotID{DayID: dayID, TimeslotID: uint32(i % 4), ArenaSlotID: uint32(i / 4)}
			_, err := f.tournament.AddGroupToArena(g, a)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := f.tournament.DayData(dayID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// every bound arena points at a group that points back
	data, err := f.tournament.DayData(dayID)
	require.NoError(t, err)
	bound := 0
	for _, ts := range data.Timeslots {
		for _, a := range ts.Arenas {
			if a.Group != nil {
				bound++
			}
		}
	}
	free, err := f.tournament.FreeGroups()
	require.NoError(t, err)
	assert.Equal(t, 16, bound+len(free))
}

// run with -race: load and create publish a tournament other goroutines mutate at once
func TestLoadAndCreateRaceWithMutations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.tournament.Create("Open")
	require.NoError(t, err)
	_, err = f.tournament.AddBewerb("Epee", 2, 4)
	require.NoError(t, err)
	_, err = f.tournament.Save(ctx, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%5 == 0 {
				summary, err := f.tournament.Create("Fresh")
				assert.NoError(t, err)
				assert.Equal(t, "Fresh", summary.Name)
				return
			}
			result, _, err := f.tournament.Load(ctx, "")
			assert.NoError(t, err)
			assert.Equal(t, "Open", result.Summary.Name)
		}()
		go func() {
			defer wg.Done()
			_, err := f.tournament.AddBewerb("Foil", 3, 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err = f.tournament.Summary()
	require.NoError(t, err)
}
