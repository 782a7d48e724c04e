package ecs

import (
	"fmt"

	"github.com/milk9111/goldminer/ecs/component"
)

const maxComponentKinds = 256

// Mask is a set of component kinds. An entity matches a mask when it holds
// every kind in it.
type Mask [maxComponentKinds / 64]uint64

// MaskOf builds a mask from component handles.
func MaskOf(kinds ...component.Kind) Mask {
	var m Mask
	for _, k := range kinds {
		m.Set(k.ID())
	}
	return m
}

func (m *Mask) Set(id component.ComponentID) {
	checkKindID(id)
	m[id/64] |= 1 << (id % 64)
}

func (m *Mask) Clear(id component.ComponentID) {
	checkKindID(id)
	m[id/64] &^= 1 << (id % 64)
}

func (m Mask) Has(id component.ComponentID) bool {
	if id == 0 || int(id) >= maxComponentKinds {
		return false
	}
	return m[id/64]&(1<<(id%64)) != 0
}

// Contains reports whether every kind in other is also in m.
func (m Mask) Contains(other Mask) bool {
	for i := range m {
		if m[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

func (m Mask) IsZero() bool {
	return m == Mask{}
}

func checkKindID(id component.ComponentID) {
	if id == 0 || int(id) >= maxComponentKinds {
		panic(fmt.Sprintf("ecs: component id %d out of range", id))
	}
}
