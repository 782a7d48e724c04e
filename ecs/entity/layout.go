package entity

import (
	"fmt"

	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/layouts"
)

type spawnFn func(w *ecs.World, env Env, x, y float64) (ecs.Entity, error)

var spawnRegistry = map[string]spawnFn{
	"gold":           NewGold,
	"rock":           NewRock,
	"diamond":        NewDiamond,
	"treasure_chest": NewTreasureChest,
	"mystery_bag":    NewMysteryBag,
	"mole": func(w *ecs.World, _ Env, x, y float64) (ecs.Entity, error) {
		return NewMole(w, x, y)
	},
}

// LoadLayout spawns every placement of the named layout and returns the
// created entities in file order.
func LoadLayout(w *ecs.World, env Env, name string) ([]ecs.Entity, error) {
	rows, err := layouts.Load(name)
	if err != nil {
		return nil, err
	}
	return Spawn(w, env, rows)
}

func Spawn(w *ecs.World, env Env, rows []layouts.Placement) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(rows))
	for i, r := range rows {
		fn, ok := spawnRegistry[r.Kind]
		if !ok {
			return out, fmt.Errorf("layout: row %d: unknown kind %q", i+1, r.Kind)
		}
		e, err := fn(w, env, r.X, r.Y)
		if err != nil {
			return out, fmt.Errorf("layout: row %d: %w", i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Round is everything NewRound created, per player.
type Round struct {
	Players []ecs.Entity
	Ropes   []ecs.Entity
	Timers  []ecs.Entity
	UIs     []ecs.Entity
	Items   []ecs.Entity
}

// NewRound sets up every configured player with a rope, timer and HUD, then
// spawns the named layout.
func NewRound(w *ecs.World, env Env, layout string) (Round, error) {
	var r Round
	cfg := env.cfg()
	for p := range cfg.Players {
		player, err := NewPlayer(w, env, p)
		if err != nil {
			return r, err
		}
		rp, err := NewRope(w, env, p)
		if err != nil {
			return r, err
		}
		timer, err := NewTimer(w, p, cfg.Game.TimeLimit)
		if err != nil {
			return r, err
		}
		ui, err := NewUI(w, p)
		if err != nil {
			return r, err
		}
		r.Players = append(r.Players, player)
		r.Ropes = append(r.Ropes, rp)
		r.Timers = append(r.Timers, timer)
		r.UIs = append(r.UIs, ui)
	}

	items, err := LoadLayout(w, env, layout)
	r.Items = items
	return r, err
}
