package tournament

import (
	"fmt"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/competition"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
)

// AddGroupToArena binds a group and an arena slot to each other, first
// freeing whatever either side was bound to. Both ids are resolved before
// anything is freed, so an unresolved id leaves the graph untouched.
func (t *Tournament) AddGroupToArena(groupID common.GroupID, arenaID common.ArenaSlotID) (common.Diagnostics, error) {
	group, ok := t.Group(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: group %s not found", common.ErrInvalidInput, groupID)
	}
	arena, ok := t.Arena(arenaID)
	if !ok {
		return nil, fmt.Errorf("%w: arena %s not found", common.ErrInvalidInput, arenaID)
	}

	var diags common.Diagnostics
	diags.Merge(t.freeArena(arena))
	diags.Merge(t.freeGroup(group))

	group.SetArena(arena.FullID())
	arena.SetGroup(group.FullID())
	return diags, nil
}

// FreeUpGroup unbinds a group from its arena slot. A free group is a no-op.
func (t *Tournament) FreeUpGroup(groupID common.GroupID) (common.Diagnostics, error) {
	group, ok := t.Group(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: group %s not found", common.ErrInvalidInput, groupID)
	}
	return t.freeGroup(group), nil
}

// FreeUpArena unbinds an arena slot from its group. A free arena is a no-op.
func (t *Tournament) FreeUpArena(arenaID common.ArenaSlotID) (common.Diagnostics, error) {
	arena, ok := t.Arena(arenaID)
	if !ok {
		return nil, fmt.Errorf("%w: arena %s not found", common.ErrInvalidInput, arenaID)
	}
	return t.freeArena(arena), nil
}

// freeGroup clears both sides. A stale arena reference is reported and only
// the group side is cleared.
func (t *Tournament) freeGroup(group *competition.Group) common.Diagnostics {
	var diags common.Diagnostics
	arenaID, ok := group.Arena()
	if !ok {
		return diags
	}
	group.ClearArena()

	arena, ok := t.Arena(arenaID)
	if !ok {
		diags.Add(common.WarnStaleArena, "group %s referenced missing arena %s", group.FullID(), arenaID)
		return diags
	}
	held, ok := arena.Group()
	switch {
	case !ok:
		diags.Add(common.WarnAssignmentClash, "group %s referenced arena %s which held no group", group.FullID(), arenaID)
	case !held.SameAs(group.FullID()):
		diags.Add(common.WarnAssignmentClash, "group %s referenced arena %s which holds group %s", group.FullID(), arenaID, held)
	default:
		arena.ClearGroup()
	}
	return diags
}

func (t *Tournament) freeArena(arena *schedule.ArenaSlot) common.Diagnostics {
	var diags common.Diagnostics
	groupID, ok := arena.Group()
	if !ok {
		return diags
	}
	arena.ClearGroup()

	group, ok := t.Group(groupID)
	if !ok {
		diags.Add(common.WarnStaleGroup, "arena %s referenced missing group %s", arena.FullID(), groupID)
		return diags
	}
	held, ok := group.Arena()
	switch {
	case !ok:
		diags.Add(common.WarnAssignmentClash, "arena %s referenced group %s which held no arena", arena.FullID(), groupID)
	case held != arena.FullID():
		diags.Add(common.WarnAssignmentClash, "arena %s referenced group %s which holds arena %s", arena.FullID(), groupID, held)
	default:
		group.ClearArena()
	}
	return diags
}
