package ecs

import (
	"sort"

	"github.com/milk9111/goldminer/ecs/component"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type record struct {
	alive bool
	mask  Mask
}

// World owns entities and their components. It is not safe for concurrent
// use; systems run one after another on the game goroutine.
type World struct {
	nextID  Entity
	live    []Entity
	records []record

	stores map[component.ComponentID]storage
	kinds  []component.ComponentID
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]storage)}
}

// CreateEntity allocates a fresh entity id.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func (w *World) CreateEntity() Entity {
	w.nextID++
	e := w.nextID
	w.records = append(w.records, record{alive: true})
	w.live = append(w.live, e)
	return e
}

// DestroyEntity strips every component from e and retires its id.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	RemoveAll(w, e)
	w.records[e-1] = record{}
	i := sort.Search(len(w.live), func(i int) bool { return w.live[i] >= e })
	if i < len(w.live) && w.live[i] == e {
		w.live = append(w.live[:i], w.live[i+1:]...)
	}
	return true
}

// IsAlive reports whether e was created by w and not yet destroyed.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil || e == 0 || int(e) > len(w.records) {
		return false
	}
	return w.records[e-1].alive
}

// Entities returns a snapshot of the live entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.live...)
}

// Mask returns the set of component kinds e currently holds.
func (w *World) Mask(e Entity) Mask {
	if !w.IsAlive(e) {
		return Mask{}
	}
	return w.records[e-1].mask
}

// Query returns a snapshot of live entities holding every given kind, in id
// order. Callers may add or remove components while walking the result.
func (w *World) Query(kinds ...component.Kind) []Entity {
	return w.QueryMask(MaskOf(kinds...))
}

func (w *World) QueryMask(m Mask) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	for _, e := range w.live {
		if w.records[e-1].mask.Contains(m) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id entity holding every given kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	m := MaskOf(kinds...)
	for _, e := range w.live {
		if w.records[e-1].mask.Contains(m) {
			return e, true
		}
	}
	return 0, false
}

// RemoveAll detaches every component from e except the listed kinds and
// returns how many were removed. Removal hooks run for each one.
func RemoveAll(w *World, e Entity, except ...component.Kind) int {
	if !IsAlive(w, e) {
		return 0
	}
	keep := MaskOf(except...)
	removed := 0
	for _, id := range w.kinds {
		if keep.Has(id) || !w.records[e-1].mask.Has(id) {
			continue
		}
		w.records[e-1].mask.Clear(id)
		if w.stores[id].remove(e) {
			removed++
		}
	}
	return removed
}

func (w *World) registerStore(id component.ComponentID, s storage) {
	w.stores[id] = s
	i := sort.Search(len(w.kinds), func(i int) bool { return w.kinds[i] >= id })
	w.kinds = append(w.kinds, 0)
	copy(w.kinds[i+1:], w.kinds[i:])
	w.kinds[i] = id
}
