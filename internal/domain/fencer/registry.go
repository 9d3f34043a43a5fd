package fencer

import (
	"iter"

	"github.com/gravadigital/turnier-api/internal/domain/container"
)

// Registry is the flat collection of fencers
type Registry struct {
	fencers *container.UidContainer[*Fencer]
}

func NewRegistry() *Registry {
	return &Registry{fencers: container.New[*Fencer]()}
}

// Push allocates an id for f and stores it
func (r *Registry) Push(f *Fencer) uint32 {
	return r.fencers.Push(f)
}

// Insert stores f under its existing id
func (r *Registry) Insert(f *Fencer) {
	r.fencers.Insert(f)
}

func (r *Registry) Get(id uint32) (*Fencer, bool) {
	return r.fencers.Get(id)
}

func (r *Registry) Remove(id uint32) bool {
	return r.fencers.Remove(id)
}

func (r *Registry) Len() int {
	return r.fencers.Len()
}

func (r *Registry) All() iter.Seq[*Fencer] {
	return r.fencers.All()
}

// FindSame returns the fencer matching rec by id and name
func (r *Registry) FindSame(rec Record) (*Fencer, bool) {
	for f := range r.fencers.All() {
		if f.IsSame(rec) {
			return f, true
		}
	}
	return nil, false
}
