package entity

import (
	"testing"

	"github.com/milk9111/goldminer/config"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/layouts"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/rope"
)

func newEnv() (*ecs.World, Env) {
	return ecs.NewWorld(), Env{Physics: physics.NewWorld(physics.DefaultConfig()), Config: config.Default()}
}

func TestNewRound(t *testing.T) {
	for _, name := range layouts.Names() {
		t.Run(name, func(t *testing.T) {
			w, env := newEnv()
			rows, err := layouts.Load(name)
			if err != nil {
				t.Fatalf("load layout: %v", err)
			}

			r, err := NewRound(w, env, name)
			if err != nil {
				t.Fatalf("new round: %v", err)
			}

			players := len(env.Config.Players)
			if len(r.Players) != players || len(r.Ropes) != players || len(r.Timers) != players || len(r.UIs) != players {
				t.Fatalf("expected %d of each per-player entity, got %+v", players, r)
			}
			if len(r.Items) != len(rows) {
				t.Fatalf("expected %d layout entities, got %d", len(rows), len(r.Items))
			}

			bodies := players
			for _, row := range rows {
				if row.Kind != "mole" {
					bodies++
				}
			}
			if env.Physics.BodyCount() != bodies {
				t.Fatalf("expected %d bodies, got %d", bodies, env.Physics.BodyCount())
			}
			if got := len(w.Query(component.CollectableComponent)); got != bodies-players {
				t.Fatalf("expected %d collectables, got %d", bodies-players, got)
			}
		})
	}
}

func TestRopeStartsAtRest(t *testing.T) {
	w, env := newEnv()
	if _, err := NewPlayer(w, env, 1); err != nil {
		t.Fatalf("new player: %v", err)
	}
	r, err := NewRope(w, env, 1)
	if err != nil {
		t.Fatalf("new rope: %v", err)
	}

	rs := ecs.Get(w, r, component.RopeStateComponent)
	if rs.Phase != rope.AtRest || rs.Length != 0 {
		t.Fatalf("expected rope at rest, got %+v", rs.State)
	}
	if owner := ecs.Get(w, r, component.OwnerComponent).Player; owner != 1 {
		t.Fatalf("expected owner 1, got %d", owner)
	}
	h := ecs.Get(w, r, component.PhysicsBodyComponent).Handle
	if v, ok := env.Physics.Owner(h); !ok || v != r {
		t.Fatalf("body back-reference %v %v, want %d", v, ok, r)
	}
	if !env.Physics.IsDynamic(h) {
		t.Fatalf("rope body should be dynamic")
	}
}

func TestNewRopeWithoutPlayer(t *testing.T) {
	w, env := newEnv()
	if _, err := NewRope(w, env, 0); err == nil {
		t.Fatalf("expected error without a player")
	}
	if env.Physics.BodyCount() != 0 {
		t.Fatalf("body leaked on failure")
	}
}

func TestNewPlayerOutOfRange(t *testing.T) {
	w, env := newEnv()
	if _, err := NewPlayer(w, env, len(env.Config.Players)); err == nil {
		t.Fatalf("expected error for unconfigured player")
	}
}

func TestItemFactories(t *testing.T) {
	cases := []struct {
		name  string
		new   spawnFn
		cat   component.Category
		value int
	}{
		{"gold", NewGold, component.Gold, 70},
		{"rock", NewRock, component.Rock, 100},
		{"diamond", NewDiamond, component.Diamond, 100},
		{"treasure_chest", NewTreasureChest, component.TreasureChest, 100},
		{"mystery_bag", NewMysteryBag, component.MysteryBag, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, env := newEnv()
			e, err := c.new(w, env, 10, 20)
			if err != nil {
				t.Fatalf("new %s: %v", c.name, err)
			}
			item := ecs.Get(w, e, component.ItemComponent)
			if item.Category != c.cat || item.Value != c.value {
				t.Fatalf("expected %v worth %d, got %+v", c.cat, c.value, *item)
			}
			if owner := ecs.Get(w, e, component.OwnerComponent).Player; owner != component.Unowned {
				t.Fatalf("new item should be unowned, got %d", owner)
			}
			pb := ecs.Get(w, e, component.PhysicsBodyComponent)
			if !pb.Center || env.Physics.IsDynamic(pb.Handle) {
				t.Fatalf("item body should be static and centered")
			}
		})
	}
}

func TestSpawnUnknownKind(t *testing.T) {
	w, env := newEnv()
	_, err := Spawn(w, env, []layouts.Placement{{Kind: "gold", X: 1, Y: 1}, {Kind: "dragon", X: 2, Y: 2}})
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
