package ecs

import (
	"fmt"

	"github.com/milk9111/goldminer/ecs/component"
)

func storeOf[T any](w *World, h component.ComponentHandle[T], create bool) *sparseSet[T] {
	if w == nil || h.ID() == 0 {
		return nil
	}
	if st, ok := w.stores[h.ID()]; ok {
		return st.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	s := &sparseSet[T]{}
	w.registerStore(h.ID(), s)
	return s
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], value T) error {
	if h.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeOf(w, h, true).set(e, value)
	w.records[e-1].mask.Set(h.ID())
	return nil
}

// Has reports whether e holds a component of the handle's kind.
func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	return w.Mask(e).Has(h.ID())
}

// Get returns the component of e. Asking for a component the entity does not
// hold is a programming error and panics; use TryGet for optional data.
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) *T {
	v, ok := TryGet(w, e, h)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no component %d (%T)", e, h.ID(), *new(T)))
	}
	return v
}

func TryGet[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if !Has(w, e, h) {
		return nil, false
	}
	return storeOf(w, h, false).get(e)
}

// Remove detaches the component and reports whether one was present.
func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if !Has(w, e, h) {
		return false
	}
	w.records[e-1].mask.Clear(h.ID())
	return storeOf(w, h, false).remove(e)
}

// OnRemove registers fn to run whenever a component of this kind is detached,
// including during RemoveAll and DestroyEntity. One hook per kind.
func OnRemove[T any](w *World, h component.ComponentHandle[T], fn func(e Entity, v *T)) {
	s := storeOf(w, h, true)
	if s == nil {
		return
	}
	s.onRemove = fn
}

// ForEach calls fn for every live entity holding the kind, in id order.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(e Entity, v *T)) {
	for _, e := range w.Query(h) {
		if v, ok := TryGet(w, e, h); ok {
			fn(e, v)
		}
	}
}

// Count returns how many entities hold the kind.
func Count[T any](w *World, h component.ComponentHandle[T]) int {
	return storeOf(w, h, false).len()
}
