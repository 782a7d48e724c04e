package rules

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

const revealScript = `
reveal := func(bag) {
	if bag.player == 1 {
		return {value: 500, weight: 2.5}
	}
	return {value: bag.value + 10}
}
`

const moleScript = `
move := func(m) {
	right := m.moving_right
	if m.x >= m.max_x { right = false }
	if m.x <= m.min_x { right = true }
	dx := m.speed * m.dt
	if !right { dx = -dx }
	return {dx: dx, moving_right: right}
}
`

func TestNoScriptDisablesRule(t *testing.T) {
	rt := NewRuntime(t.TempDir(), zaptest.NewLogger(t))
	if err := rt.LoadAll(); err != nil {
		t.Fatalf("load all: %v", err)
	}
	if rt.Has(MysteryBag) || rt.Has(Mole) {
		t.Fatalf("rules active without scripts")
	}
	if _, ok, err := rt.RevealMystery(0, 0, 1); ok || err != nil {
		t.Fatalf("expected disabled rule, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := rt.MoveMole(MoleState{}); ok || err != nil {
		t.Fatalf("expected disabled rule, got ok=%v err=%v", ok, err)
	}

	var nilRuntime *Runtime
	if nilRuntime.Has(Mole) {
		t.Fatalf("nil runtime reports a rule")
	}
}

func TestRevealMystery(t *testing.T) {
	rt := NewRuntime("", zaptest.NewLogger(t))
	if err := rt.LoadSource(MysteryBag, []byte(revealScript)); err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		name   string
		player int
		value  int
		want   Reveal
	}{
		{"jackpot", 1, 0, Reveal{Value: 500, Weight: 2.5}},
		{"small", 0, 5, Reveal{Value: 15, Weight: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok, err := rt.RevealMystery(c.player, c.value, 1)
			if err != nil || !ok {
				t.Fatalf("reveal: ok=%v err=%v", ok, err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestMoveMole(t *testing.T) {
	rt := NewRuntime("", nil)
	if err := rt.LoadSource(Mole, []byte(moleScript)); err != nil {
		t.Fatalf("load: %v", err)
	}

	step, ok, err := rt.MoveMole(MoleState{X: 100, Speed: 60, MovingRight: true, DT: 0.5, MinX: 0, MaxX: 1000})
	if err != nil || !ok {
		t.Fatalf("move: ok=%v err=%v", ok, err)
	}
	if step.DX != 30 || !step.MovingRight {
		t.Fatalf("expected dx=30 moving right, got %+v", step)
	}

	step, _, _ = rt.MoveMole(MoleState{X: 1000, Speed: 60, MovingRight: true, DT: 0.5, MaxX: 1000})
	if step.DX != -30 || step.MovingRight {
		t.Fatalf("expected turn around at the edge, got %+v", step)
	}
}

func TestCompileErrors(t *testing.T) {
	rt := NewRuntime("", nil)
	if err := rt.LoadSource(MysteryBag, []byte("reveal := func(")); err == nil {
		t.Fatalf("expected compile error")
	}
	if err := rt.LoadSource("bomb", []byte("x := 1")); err == nil {
		t.Fatalf("expected unknown rule error")
	}
	// missing entry point fails at compile time
	if err := rt.LoadSource(Mole, []byte("x := 1")); err == nil {
		t.Fatalf("expected missing entry point error")
	}
}

func TestLoadFromDirAndReload(t *testing.T) {
	dir := t.TempDir()
	rt := NewRuntime(dir, zaptest.NewLogger(t))

	path := filepath.Join(dir, "mystery_bag.tengo")
	if err := os.WriteFile(path, []byte(revealScript), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := rt.LoadAll(); err != nil {
		t.Fatalf("load all: %v", err)
	}
	if !rt.Has(MysteryBag) {
		t.Fatalf("expected mystery_bag rule")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	active, err := rt.Reload(path)
	if err != nil || active {
		t.Fatalf("expected rule to be dropped, got active=%v err=%v", active, err)
	}
	if rt.Has(MysteryBag) {
		t.Fatalf("rule survived removal of its script")
	}

	if active, err := rt.Reload(filepath.Join(dir, "other.tengo")); active || err != nil {
		t.Fatalf("unrelated file reloaded a rule: %v %v", active, err)
	}
}
