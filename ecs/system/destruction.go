package system

import (
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"go.uber.org/zap"
)

// DestructionSystem reaps entities carrying DestroyMarker. It runs last in
// the tick so nothing observes a half-destroyed entity.
type DestructionSystem struct {
	log *zap.Logger
}

func NewDestructionSystem(log *zap.Logger) *DestructionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &DestructionSystem{log: log}
}

func (s *DestructionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	marked := w.Query(component.DestroyMarkerComponent)
	for _, e := range marked {
		unlinkHolders(w, e)
		// removing PhysicsBody runs the body hook; the marker goes last
		ecs.RemoveAll(w, e, component.DestroyMarkerComponent)
		ecs.Remove(w, e, component.DestroyMarkerComponent)
		ecs.DestroyEntity(w, e)
	}
	if len(marked) > 0 {
		s.log.Debug("destroyed", zap.Int("count", len(marked)))
	}
}

// unlinkHolders drops any rope link that still points at item.
func unlinkHolders(w *ecs.World, item ecs.Entity) {
	for _, r := range w.Query(component.GrabbedLinkComponent) {
		if ecs.Entity(ecs.Get(w, r, component.GrabbedLinkComponent).Item) == item {
			ecs.Remove(w, r, component.GrabbedLinkComponent)
		}
	}
}
