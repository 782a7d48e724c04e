package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/rope"
	"go.uber.org/zap"
)

// CollisionSystem turns rope/item hits into grabs. A rope holds at most one
// item, and an item is attached at most once.
type CollisionSystem struct {
	pw  *physics.World
	log *zap.Logger
}

func NewCollisionSystem(pw *physics.World, log *zap.Logger) *CollisionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollisionSystem{pw: pw, log: log}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || s.pw == nil || w == nil {
		return
	}
	s.Process(w, s.pw.DrainHits())
}

// Process handles one tick's hits in order.
func (s *CollisionSystem) Process(w *ecs.World, hits []physics.Hit) {
	for _, hit := range hits {
		a, okA := bodyOwner(w, s.pw, hit.A)
		b, okB := bodyOwner(w, s.pw, hit.B)
		if !okA || !okB {
			s.log.Debug("hit without live owner", zap.Bool("a", okA), zap.Bool("b", okB))
			continue
		}

		ropeEnt, item, ok := classify(w, a, b)
		if !ok {
			continue
		}
		s.grab(w, ropeEnt, item)
	}
}

func classify(w *ecs.World, a, b ecs.Entity) (ecs.Entity, ecs.Entity, bool) {
	switch {
	case ecs.Has(w, a, component.RopeTagComponent) && ecs.Has(w, b, component.CollectableComponent):
		return a, b, true
	case ecs.Has(w, b, component.RopeTagComponent) && ecs.Has(w, a, component.CollectableComponent):
		return b, a, true
	default:
		return 0, 0, false
	}
}

func (s *CollisionSystem) grab(w *ecs.World, ropeEnt, item ecs.Entity) {
	if ecs.Has(w, ropeEnt, component.GrabbedLinkComponent) {
		return
	}
	if ecs.Has(w, item, component.DestroyMarkerComponent) {
		return
	}
	rs, ok := ecs.TryGet(w, ropeEnt, component.RopeStateComponent)
	if !ok {
		return
	}
	next, ok := rope.Grab(rs.State)
	if !ok {
		return
	}

	ropeBody := ecs.Get(w, ropeEnt, component.PhysicsBodyComponent).Handle
	itemBody := ecs.Get(w, item, component.PhysicsBodyComponent).Handle
	if s.pw.IsDynamic(itemBody) {
		// already on another rope
		return
	}

	if !s.pw.SetDynamic(itemBody) {
		panic("collision: item body could not be made dynamic")
	}
	joint, err := s.pw.CreateWeldJoint(ropeBody, itemBody)
	if err != nil {
		panic("collision: weld joint: " + err.Error())
	}
	s.pw.SetVelocity(itemBody, cp.Vector{})
	s.pw.SetAngularVelocity(itemBody, 0)

	if err := ecs.Add(w, ropeEnt, component.GrabbedLinkComponent, component.GrabbedLink{Joint: joint, Item: uint64(item)}); err != nil {
		s.pw.DestroyJoint(joint)
		s.log.Warn("grab link", zap.Uint64("rope", uint64(ropeEnt)), zap.Error(err))
		return
	}
	rs.State = next

	player := ecs.Get(w, ropeEnt, component.OwnerComponent).Player
	if owner, ok := ecs.TryGet(w, item, component.OwnerComponent); ok {
		owner.Player = player
	}

	s.log.Debug("grab",
		zap.Uint64("rope", uint64(ropeEnt)),
		zap.Uint64("item", uint64(item)),
		zap.Int("player", player))
}
