package layouts

import (
	"math/rand"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"layout1", "layout2", "layout3"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	known := map[string]bool{
		"gold": true, "rock": true, "diamond": true,
		"treasure_chest": true, "mystery_bag": true, "mole": true,
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			rows, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(rows) == 0 {
				t.Fatalf("layout is empty")
			}
			for _, r := range rows {
				if !known[r.Kind] {
					t.Fatalf("unknown kind %q", r.Kind)
				}
				if r.X < 0 || r.X > 1280 || r.Y < 0 || r.Y > 720 {
					t.Fatalf("placement off screen: %+v", r)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	rows, err := Parse([]byte("kind,x,y\n Gold ,10,20\nrock,1.5,2\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 || rows[0].Kind != "gold" || rows[0].X != 10 || rows[1].X != 1.5 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	if _, err := Parse([]byte("kind,x,y\ngold,abc,1\n")); err == nil {
		t.Fatalf("expected error for non-numeric x")
	}
	if _, err := Load("missing"); err == nil {
		t.Fatalf("expected error for missing layout")
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[Random(rng)] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three layouts to be picked, got %v", seen)
	}
}
