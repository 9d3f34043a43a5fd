// Package tournament is the assignment engine. It owns the days, the events
// and the fencer roster, and keeps the relationships between them symmetric:
// a group bound to an arena slot is recorded on both sides, and a fencer
// placed into a group is a member of that group.
package tournament

import (
	"fmt"
	"strings"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/competition"
	"github.com/gravadigital/turnier-api/internal/domain/container"
	"github.com/gravadigital/turnier-api/internal/domain/fencer"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
)

// Tournament is the root of the entity graph. It is not safe for concurrent
// use; callers serialize access per instance.
type Tournament struct {
	name    string
	days    *container.UidContainer[*schedule.Day]
	bewerbs *container.UidContainer[*competition.Bewerb]
	fencers *fencer.Registry
}

// New returns an empty tournament
func New(name string) *Tournament {
	return &Tournament{
		name:    name,
		days:    container.New[*schedule.Day](),
		bewerbs: container.New[*competition.Bewerb](),
		fencers: fencer.NewRegistry(),
	}
}

func (t *Tournament) Name() string {
	return t.name
}

// ChangeName renames the tournament
func (t *Tournament) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: tournament name is required", common.ErrInvalidInput)
	}
	t.name = name
	return nil
}

// Summary is a count overview of the tournament
type Summary struct {
	Name       string `json:"name"`
	Days       int    `json:"days"`
	Bewerbs    int    `json:"bewerbs"`
	Groups     int    `json:"groups"`
	FreeGroups int    `json:"free_groups"`
	Fencers    int    `json:"fencers"`
}

// Summary counts the entities of the tournament
func (t *Tournament) Summary() Summary {
	s := Summary{
		Name:       t.name,
		Days:       t.days.Len(),
		Bewerbs:    t.bewerbs.Len(),
		FreeGroups: len(t.AllFreeGroups()),
		Fencers:    t.fencers.Len(),
	}
	for b := range t.bewerbs.All() {
		s.Groups += len(b.AllGroups())
	}
	return s
}
