package ecs

// storage is the type-erased view of a component store that the world needs
// for membership bookkeeping and bulk removal.
type storage interface {
	has(e Entity) bool
	remove(e Entity) bool
	len() int
}

// sparseSet stores components keyed by Entity. Values are held by pointer so
// a *T handed out by Get stays valid until the component is removed.
type sparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        []int

	onRemove func(e Entity, v *T)
}

func (s *sparseSet[T]) has(e Entity) bool {
	if s == nil || e == 0 || int(e) > len(s.sparse) {
		return false
	}
	idx := s.sparse[e-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	if !s.has(e) {
		return nil, false
	}
	return s.denseValues[s.sparse[e-1]], true
}

func (s *sparseSet[T]) set(e Entity, v T) *T {
	for int(e) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(e) {
		p := s.denseValues[s.sparse[e-1]]
		*p = v
		return p
	}
	p := new(T)
	*p = v
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, p)
	s.sparse[e-1] = len(s.denseEntities) - 1
	return p
}

func (s *sparseSet[T]) remove(e Entity) bool {
	if !s.has(e) {
		return false
	}
	idx := s.sparse[e-1]
	v := s.denseValues[idx]

	last := len(s.denseEntities) - 1
	lastEntity := s.denseEntities[last]
	s.denseEntities[idx] = lastEntity
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEntity-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues[last] = nil
	s.denseValues = s.denseValues[:last]
	s.sparse[e-1] = -1

	if s.onRemove != nil {
		s.onRemove(e, v)
	}
	return true
}

func (s *sparseSet[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}
