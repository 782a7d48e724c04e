package entity

import (
	"fmt"

	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/sprite"
)

// NewMole creates a mole. Moles have no body; the mole rule moves them.
func NewMole(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PositionComponent, component.Position{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("mole: add position: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, component.Velocity{DX: 1.5}); err != nil {
		return 0, fmt.Errorf("mole: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderableComponent, component.Renderable{Sprite: sprite.Bomb}); err != nil {
		return 0, fmt.Errorf("mole: add renderable: %w", err)
	}
	if err := ecs.Add(w, e, component.MoleComponent, component.Mole{Speed: 100, MovingRight: true}); err != nil {
		return 0, fmt.Errorf("mole: add mole: %w", err)
	}
	if err := ecs.Add(w, e, component.CollidableComponent, component.Collidable{}); err != nil {
		return 0, fmt.Errorf("mole: add collidable: %w", err)
	}
	return e, nil
}
