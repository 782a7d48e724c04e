package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/rope"
	"gonum.org/v1/gonum/spatial/r2"
)

// NewRope creates the rope for player p, hanging at rest below the winch.
// The player must already exist.
func NewRope(w *ecs.World, env Env, p int) (ecs.Entity, error) {
	player, ok := FindPlayer(w, p)
	if !ok {
		return 0, fmt.Errorf("rope: player %d not found", p)
	}
	pos := ecs.Get(w, player, component.PositionComponent)

	cfg := env.cfg()
	params := cfg.RopeParams()
	tip := rope.TipAt(params.Pivot(r2.Vec{X: pos.X, Y: pos.Y}), 0, params.RestLength)

	h, err := env.Physics.CreateBody(physics.BodyDef{
		Type:       physics.Dynamic,
		Position:   physics.VecToUnits(cp.Vector{X: tip.X, Y: tip.Y}),
		Shape:      physics.Shape{Kind: physics.Circle, Radius: physics.ToUnits(cfg.Rope.Radius)},
		Density:    cfg.Rope.Density,
		Friction:   cfg.Rope.Friction,
		Elasticity: cfg.Rope.Elasticity,
		HitEvents:  true,
		Bullet:     true,
	})
	if err != nil {
		return 0, fmt.Errorf("rope: create body: %w", err)
	}
	env.Physics.SetGravityScale(h, 0)

	e := ecs.CreateEntity(w)
	if err := env.Physics.SetOwner(h, e); err != nil {
		env.Physics.DestroyBody(h)
		return 0, fmt.Errorf("rope: set owner: %w", err)
	}

	if err := ecs.Add(w, e, component.PositionComponent, component.Position{X: tip.X, Y: tip.Y}); err != nil {
		return 0, fmt.Errorf("rope: add position: %w", err)
	}
	if err := ecs.Add(w, e, component.RopeStateComponent, component.RopeState{State: rope.State{SwingDir: 1}}); err != nil {
		return 0, fmt.Errorf("rope: add state: %w", err)
	}
	if err := ecs.Add(w, e, component.RopeTagComponent, component.RopeTag{}); err != nil {
		return 0, fmt.Errorf("rope: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.OwnerComponent, component.Owner{Player: p}); err != nil {
		return 0, fmt.Errorf("rope: add owner: %w", err)
	}
	if err := ecs.Add(w, e, component.CollidableComponent, component.Collidable{}); err != nil {
		return 0, fmt.Errorf("rope: add collidable: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Handle: h}); err != nil {
		return 0, fmt.Errorf("rope: add physics body: %w", err)
	}
	return e, nil
}
