package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/rope"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
)

// RopeSystem drives every rope through its state machine and applies the
// result to the rope body. A rope whose retraction finishes while holding an
// item releases it here.
type RopeSystem struct {
	pw     *physics.World
	params rope.Params
	log    *zap.Logger
}

func NewRopeSystem(pw *physics.World, params rope.Params, log *zap.Logger) *RopeSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &RopeSystem{pw: pw, params: params, log: log}
}

func (s *RopeSystem) SetParams(p rope.Params) {
	s.params = p
}

func (s *RopeSystem) Params() rope.Params {
	return s.params
}

func (s *RopeSystem) Update(w *ecs.World) {
	if s == nil || s.pw == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.RopeStateComponent, component.OwnerComponent, component.PhysicsBodyComponent) {
		owner := ecs.Get(w, e, component.OwnerComponent).Player
		player, ok := findPlayer(w, owner)
		if !ok {
			s.log.Warn("rope has no player", zap.Uint64("rope", uint64(e)), zap.Int("player", owner))
			continue
		}

		h := ecs.Get(w, e, component.PhysicsBodyComponent).Handle
		tip, _, ok := s.pw.Transform(h)
		if !ok {
			s.log.Warn("rope body missing", zap.Uint64("rope", uint64(e)))
			continue
		}
		tip = physics.VecToPixels(tip)

		pos := ecs.Get(w, player, component.PositionComponent)
		fire := false
		input, hasInput := ecs.TryGet(w, player, component.PlayerInputComponent)
		if hasInput {
			// presses while the rope is out are dropped
			fire = input.Fire
			input.Fire = false
		}

		rs := ecs.Get(w, e, component.RopeStateComponent)
		prev := rs.Phase
		next, fx := rope.Advance(rs.State, rope.Input{
			Fire:    fire,
			Pivot:   s.params.Pivot(r2.Vec{X: pos.X, Y: pos.Y}),
			Tip:     r2.Vec{X: tip.X, Y: tip.Y},
			Holding: ecs.Has(w, e, component.GrabbedLinkComponent),
		}, s.params)
		rs.State = next

		s.apply(h, fx)

		if next.Phase != prev {
			s.log.Debug("rope phase",
				zap.Uint64("rope", uint64(e)),
				zap.Stringer("from", prev),
				zap.Stringer("to", next.Phase),
				zap.Float64("length", next.Length))
		}

		if fx.Released {
			Release(w, s.pw, e)
		}
	}
}

func (s *RopeSystem) apply(h physics.BodyHandle, fx rope.Effects) {
	s.pw.SetGravityScale(h, fx.GravityScale)
	if fx.Teleport {
		s.pw.SetTransform(h, physics.VecToUnits(cp.Vector{X: fx.Target.X, Y: fx.Target.Y}), 0)
		s.pw.SetVelocity(h, cp.Vector{})
		s.pw.SetAngularVelocity(h, 0)
		return
	}
	s.pw.SetVelocity(h, physics.VecToUnits(cp.Vector{X: fx.Velocity.X, Y: fx.Velocity.Y}))
}
