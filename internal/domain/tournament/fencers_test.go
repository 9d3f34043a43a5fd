package tournament

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
)

func TestUpdateFencersUpserts(t *testing.T) {
	faker := gofakeit.New(11)
	tr := New("Open")
	b := bewerb(t, tr, "Epee", 2, 2)

	name := faker.Name()
	diags := tr.UpdateFencers([]fencer.Record{{Name: name, Bewerbs: []common.BewerbID{b}}})
	assert.True(t, diags.Empty())
	require.Len(t, tr.AllFencers(), 1)
	created := tr.AllFencers()[0]
	assert.Equal(t, uint32(0), created.ID)
	require.Len(t, created.Bewerbs, 1)
	assert.Len(t, created.Bewerbs[0].Groups, 2)

	// matching id and name updates in place
	tr.UpdateFencers([]fencer.Record{{ID: 0, Name: name, Bewerbs: nil}})
	require.Len(t, tr.AllFencers(), 1)
	assert.Empty(t, tr.AllFencers()[0].Bewerbs)

	// same id with another name is a new fencer
	tr.UpdateFencers([]fencer.Record{{ID: 0, Name: faker.Name()}})
	assert.Len(t, tr.AllFencers(), 2)
}

func TestUpdateFencersWarnsOnUnknownEvent(t *testing.T) {
	tr := New("Open")

	diags := tr.UpdateFencers([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{{BewerbName: "Ghost", BewerbID: 3}}}})

	require.Len(t, diags, 1)
	assert.Equal(t, common.WarnUnknownBewerb, diags[0].Code)
	assert.Len(t, tr.AllFencers(), 1)
}

func TestAssignFencerMovesBetweenGroupsOfARound(t *testing.T) {
	tr := New("Open")
	b := bewerb(t, tr, "Epee", 2, 2)
	tr.UpdateFencers([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{b}}})

	_, err := tr.AssignFencer(0, gid(b, 0, 0))
	require.NoError(t, err)
	_, err = tr.AssignFencer(0, gid(b, 1, 1))
	require.NoError(t, err)

	g00, _ := tr.Group(gid(b, 0, 0))
	g01, _ := tr.Group(gid(b, 0, 1))
	g11, _ := tr.Group(gid(b, 1, 1))
	assert.Equal(t, []uint32{0}, g00.Fencers())
	assert.Equal(t, []uint32{0}, g11.Fencers())

	diags, err := tr.AssignFencer(0, gid(b, 0, 1))
	require.NoError(t, err)
	assert.True(t, diags.Empty())
	assert.Empty(t, g00.Fencers())
	assert.Equal(t, []uint32{0}, g01.Fencers())

	f, _ := tr.Fencer(0)
	assert.ElementsMatch(t, []common.GroupID{gid(b, 0, 1), gid(b, 1, 1)}, f.Groups())
}

func TestAssignFencerRejectsUnknownTargets(t *testing.T) {
	tr := New("Open")
	b := bewerb(t, tr, "Epee", 1, 1)
	other := bewerb(t, tr, "Foil", 1, 1)
	tr.UpdateFencers([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{b}}})

	_, err := tr.AssignFencer(5, gid(b, 0, 0))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	_, err = tr.AssignFencer(0, gid(b, 0, 4))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	_, err = tr.AssignFencer(0, gid(b, 3, 0))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	f, _ := tr.Fencer(0)
	assert.Nil(t, f.Data().Bewerbs[0].Groups[0], "rejected assignments leave the slot empty")
	_, err = tr.AssignFencer(0, gid(other, 0, 0))
	assert.ErrorIs(t, err, common.ErrInvalidInput, "fencer is not registered for Foil")

	g, _ := tr.Group(gid(other, 0, 0))
	assert.Empty(t, g.Fencers())
}

func TestUpdateFencerLeavesOldGroups(t *testing.T) {
	tr := New("Open")
	b := bewerb(t, tr, "Epee", 1, 1)
	tr.UpdateFencers([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{b}}})
	_, err := tr.AssignFencer(0, gid(b, 0, 0))
	require.NoError(t, err)

	tr.UpdateFencers([]fencer.Record{{ID: 0, Name: "Anna", Bewerbs: []common.BewerbID{b}}})

	g, _ := tr.Group(gid(b, 0, 0))
	assert.Empty(t, g.Fencers())
	f, _ := tr.Fencer(0)
	assert.Empty(t, f.Groups())
}

func TestRemoveFencerLeavesGroups(t *testing.T) {
	tr := New("Open")
	b := bewerb(t, tr, "Epee", 1, 1)
	tr.UpdateFencers([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{b}}, {Name: "Bert", Bewerbs: []common.BewerbID{b}}})
	_, err := tr.AssignFencer(0, gid(b, 0, 0))
	require.NoError(t, err)
	_, err = tr.AssignFencer(1, gid(b, 0, 0))
	require.NoError(t, err)

	assert.True(t, tr.RemoveFencer(0).Empty())

	g, _ := tr.Group(gid(b, 0, 0))
	assert.Equal(t, []uint32{1}, g.Fencers())
	assert.Len(t, tr.AllFencers(), 1)
	assert.True(t, tr.RemoveFencer(0).Empty())
}

func TestRemoveBewerbDropsFencerSlots(t *testing.T) {
	tr := New("Open")
	b := bewerb(t, tr, "Epee", 1, 1)
	keep := bewerb(t, tr, "Foil", 1, 1)
	tr.UpdateFencers([]fencer.Record{{Name: "Anna", Bewerbs: []common.BewerbID{b, keep}}})
	_, err := tr.AssignFencer(0, gid(b, 0, 0))
	require.NoError(t, err)

	tr.RemoveBewerb(b.BewerbID)

	f, _ := tr.Fencer(0)
	_, ok := f.SlotCount(b.BewerbID)
	assert.False(t, ok)
	_, ok = f.SlotCount(keep.BewerbID)
	assert.True(t, ok)
	assert.Empty(t, f.Groups())
}
