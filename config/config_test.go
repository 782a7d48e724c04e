package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Fatalf("unexpected screen %+v", cfg.Screen)
	}
	if cfg.Game.TimeLimit != 90 {
		t.Fatalf("expected 90s time limit, got %v", cfg.Game.TimeLimit)
	}
	if len(cfg.Players) != 2 || cfg.Players[0].FireKey != "Space" || cfg.Players[1].FireKey != "Enter" {
		t.Fatalf("unexpected players %+v", cfg.Players)
	}

	p := cfg.RopeParams()
	if p.MaxAngle != 75 || p.SwingSpeed != 90 || p.MaxLength != 800 || p.ExtendSpeed != 600 || p.RetractSpeed != 900 {
		t.Fatalf("unexpected rope params %+v", p)
	}
	if p.RestLength != 80 || p.DT != cfg.Game.DT {
		t.Fatalf("unexpected rope params %+v", p)
	}

	pw := cfg.PhysicsWorld()
	if pw.Gravity.Y != 9.8 || pw.HitThreshold != 0.0001 {
		t.Fatalf("unexpected physics config %+v", pw)
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte("game:\n  time_limit: 30\nrope:\n  extend_speed: 450\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.TimeLimit != 30 {
		t.Fatalf("expected overridden time limit 30, got %v", cfg.Game.TimeLimit)
	}
	if cfg.Rope.ExtendSpeed != 450 {
		t.Fatalf("expected overridden extend speed 450, got %v", cfg.Rope.ExtendSpeed)
	}
	if cfg.Rope.RetractSpeed != 900 {
		t.Fatalf("untouched field lost its default: %v", cfg.Rope.RetractSpeed)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		body string
	}{
		{"bad_yaml", "game: [1, 2\n"},
		{"zero_dt", "game:\n  dt: 0\n"},
		{"no_players", "players: []\n"},
		{"negative_speed", "rope:\n  retract_speed: -1\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Game.Layout = "layout2"

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Game.Layout != "layout2" {
		t.Fatalf("expected layout2, got %q", back.Game.Layout)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("game:\n  time_limit: 60\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("game:\n  time_limit: 45\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// ignored: not a config or script file
	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "game.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event within 2s")
	}
}
