package entity

import (
	"fmt"

	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/sprite"
)

// NewPlayer creates the miner for player index p at its configured spot.
func NewPlayer(w *ecs.World, env Env, p int) (ecs.Entity, error) {
	players := env.cfg().Players
	if p < 0 || p >= len(players) {
		return 0, fmt.Errorf("player: no configuration for player %d", p)
	}
	pc := players[p]

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PositionComponent, component.Position{X: pc.X, Y: pc.Y}); err != nil {
		return 0, fmt.Errorf("player: add position: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderableComponent, component.Renderable{Sprite: sprite.PlayerIdle}); err != nil {
		return 0, fmt.Errorf("player: add renderable: %w", err)
	}
	if err := ecs.Add(w, e, component.OwnerComponent, component.Owner{Player: p}); err != nil {
		return 0, fmt.Errorf("player: add owner: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent, component.Score{}); err != nil {
		return 0, fmt.Errorf("player: add score: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerInputComponent, component.PlayerInput{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	return e, nil
}

// FindPlayer returns the player entity owned by p.
func FindPlayer(w *ecs.World, p int) (ecs.Entity, bool) {
	for _, e := range w.Query(component.PlayerTagComponent, component.OwnerComponent) {
		if ecs.Get(w, e, component.OwnerComponent).Player == p {
			return e, true
		}
	}
	return 0, false
}

// NewTimer creates the round timer for player p.
func NewTimer(w *ecs.World, p int, seconds float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameTimerComponent, component.GameTimer{TimeLeft: seconds}); err != nil {
		return 0, fmt.Errorf("timer: add game timer: %w", err)
	}
	if err := ecs.Add(w, e, component.OwnerComponent, component.Owner{Player: p}); err != nil {
		return 0, fmt.Errorf("timer: add owner: %w", err)
	}
	return e, nil
}

// NewUI creates the HUD anchor for player p.
func NewUI(w *ecs.World, p int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.UIComponent, component.UI{Slot: p}); err != nil {
		return 0, fmt.Errorf("ui: add ui: %w", err)
	}
	if err := ecs.Add(w, e, component.OwnerComponent, component.Owner{Player: p}); err != nil {
		return 0, fmt.Errorf("ui: add owner: %w", err)
	}
	return e, nil
}
