package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/sprite"
)

func NewGold(w *ecs.World, env Env, x, y float64) (ecs.Entity, error) {
	return newItem(w, env, component.Gold, sprite.Gold, x, y)
}

func NewRock(w *ecs.World, env Env, x, y float64) (ecs.Entity, error) {
	return newItem(w, env, component.Rock, sprite.Rock, x, y)
}

func NewDiamond(w *ecs.World, env Env, x, y float64) (ecs.Entity, error) {
	return newItem(w, env, component.Diamond, sprite.Diamond, x, y)
}

func NewTreasureChest(w *ecs.World, env Env, x, y float64) (ecs.Entity, error) {
	return newItem(w, env, component.TreasureChest, sprite.TreasureChest, x, y)
}

func NewMysteryBag(w *ecs.World, env Env, x, y float64) (ecs.Entity, error) {
	return newItem(w, env, component.MysteryBag, sprite.MysteryBag, x, y)
}

// newItem creates a static collectable whose sprite's top-left corner is at
// (x, y). The body sits at the sprite's center.
func newItem(w *ecs.World, env Env, c component.Category, id sprite.ID, x, y float64) (ecs.Entity, error) {
	name := c.String()
	sw, sh := sprite.Size(id)
	cfg := env.cfg()

	h, err := env.Physics.CreateBody(physics.BodyDef{
		Type:       physics.Static,
		Position:   physics.VecToUnits(cp.Vector{X: x + sw/2, Y: y + sh/2}),
		Shape:      itemShape(c, sw, sh),
		Density:    cfg.Items.Density,
		Friction:   cfg.Items.Friction,
		Elasticity: cfg.Items.Elasticity,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: create body: %w", name, err)
	}

	e := ecs.CreateEntity(w)
	if err := env.Physics.SetOwner(h, e); err != nil {
		env.Physics.DestroyBody(h)
		return 0, fmt.Errorf("%s: set owner: %w", name, err)
	}

	if err := ecs.Add(w, e, component.PositionComponent, component.Position{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("%s: add position: %w", name, err)
	}
	if err := ecs.Add(w, e, component.RenderableComponent, component.Renderable{Sprite: id}); err != nil {
		return 0, fmt.Errorf("%s: add renderable: %w", name, err)
	}
	if err := ecs.Add(w, e, component.ItemComponent, component.ItemFor(c)); err != nil {
		return 0, fmt.Errorf("%s: add item: %w", name, err)
	}
	if err := ecs.Add(w, e, component.OwnerComponent, component.Owner{Player: component.Unowned}); err != nil {
		return 0, fmt.Errorf("%s: add owner: %w", name, err)
	}
	if err := ecs.Add(w, e, component.CollectableComponent, component.Collectable{}); err != nil {
		return 0, fmt.Errorf("%s: add collectable: %w", name, err)
	}
	if err := ecs.Add(w, e, component.CollidableComponent, component.Collidable{}); err != nil {
		return 0, fmt.Errorf("%s: add collidable: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Handle: h, Center: true}); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", name, err)
	}
	return e, nil
}

func itemShape(c component.Category, w, h float64) physics.Shape {
	if c != component.MysteryBag {
		return physics.Shape{Kind: physics.Circle, Radius: physics.ToUnits(w / 2)}
	}

	// sack outline: knot on top, widest near the bottom
	hw, hh := physics.ToUnits(w/2), physics.ToUnits(h/2)
	return physics.Shape{Kind: physics.Polygon, Vertices: []cp.Vector{
		{X: 0, Y: -hh * 0.9},
		{X: -hw * 0.8, Y: -hh * 0.3},
		{X: -hw, Y: hh * 0.6},
		{X: hw, Y: hh * 0.6},
		{X: hw * 0.8, Y: -hh * 0.3},
	}}
}
