package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/sprite"
)

// BindPhysics ties body lifetime to the PhysicsBody component: removing the
// component (directly, through RemoveAll or DestroyEntity) destroys the body
// and frees its owner back-reference. A GrabbedLink takes its joint with it.
func BindPhysics(w *ecs.World, pw *physics.World) {
	ecs.OnRemove(w, component.PhysicsBodyComponent, func(_ ecs.Entity, pb *component.PhysicsBody) {
		pw.DestroyBody(pb.Handle)
	})
	ecs.OnRemove(w, component.GrabbedLinkComponent, func(_ ecs.Entity, link *component.GrabbedLink) {
		pw.DestroyJoint(link.Joint)
	})
}

// PhysicsStepSystem advances the simulation by a fixed step.
type PhysicsStepSystem struct {
	pw *physics.World
	dt float64
}

func NewPhysicsStepSystem(pw *physics.World, dt float64) *PhysicsStepSystem {
	return &PhysicsStepSystem{pw: pw, dt: dt}
}

func (s *PhysicsStepSystem) Update(w *ecs.World) {
	if s == nil || s.pw == nil || w == nil {
		return
	}
	s.pw.Step(s.dt)
}

// PhysicsSyncSystem copies body positions back into Position so rendering
// and gameplay read pixels.
type PhysicsSyncSystem struct {
	pw *physics.World
}

func NewPhysicsSyncSystem(pw *physics.World) *PhysicsSyncSystem {
	return &PhysicsSyncSystem{pw: pw}
}

func (s *PhysicsSyncSystem) Update(w *ecs.World) {
	if s == nil || s.pw == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.PhysicsBodyComponent, component.PositionComponent) {
		pb := ecs.Get(w, e, component.PhysicsBodyComponent)
		p, _, ok := s.pw.Transform(pb.Handle)
		if !ok {
			continue
		}
		px := physics.VecToPixels(p)
		if pb.Center {
			if r, ok := ecs.TryGet(w, e, component.RenderableComponent); ok {
				sw, sh := sprite.Size(r.Sprite)
				px = px.Sub(cp.Vector{X: sw / 2, Y: sh / 2})
			}
		}
		pos := ecs.Get(w, e, component.PositionComponent)
		pos.X, pos.Y = px.X, px.Y
	}
}

// bodyOwner resolves a body's back-reference to a live entity.
func bodyOwner(w *ecs.World, pw *physics.World, h physics.BodyHandle) (ecs.Entity, bool) {
	v, ok := pw.Owner(h)
	if !ok {
		return 0, false
	}
	e, ok := v.(ecs.Entity)
	if !ok || !w.IsAlive(e) {
		return 0, false
	}
	return e, true
}

// findPlayer returns the player entity for index p.
func findPlayer(w *ecs.World, p int) (ecs.Entity, bool) {
	for _, e := range w.Query(component.PlayerTagComponent, component.OwnerComponent) {
		if ecs.Get(w, e, component.OwnerComponent).Player == p {
			return e, true
		}
	}
	return 0, false
}
