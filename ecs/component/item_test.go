package component

import "testing"

func TestItemFor(t *testing.T) {
	cases := []struct {
		c      Category
		value  int
		weight float64
	}{
		{Gold, 70, 5},
		{Rock, 100, 1},
		{Diamond, 100, 1},
		{TreasureChest, 100, 3},
		{MysteryBag, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.c.String(), func(t *testing.T) {
			it := ItemFor(c.c)
			if it.Category != c.c || it.Value != c.value || it.Weight != c.weight {
				t.Fatalf("expected %v %d/%v, got %+v", c.c, c.value, c.weight, it)
			}
			back, ok := ParseCategory(c.c.String())
			if !ok || back != c.c {
				t.Fatalf("ParseCategory(%q) = %v %v", c.c.String(), back, ok)
			}
		})
	}

	if _, ok := ParseCategory("bomb"); ok {
		t.Fatalf("unexpected category bomb")
	}
}

func TestHandlesAreDistinct(t *testing.T) {
	ids := []ComponentID{
		PositionComponent.ID(), VelocityComponent.ID(), PhysicsBodyComponent.ID(),
		RopeStateComponent.ID(), GrabbedLinkComponent.ID(), ItemComponent.ID(),
		OwnerComponent.ID(), PlayerInputComponent.ID(), ScoreComponent.ID(),
		GameTimerComponent.ID(), LifeTimeComponent.ID(), UIComponent.ID(),
		RenderableComponent.ID(), MoleComponent.ID(), CollectedComponent.ID(),
		CollectableComponent.ID(), RopeTagComponent.ID(), CollidableComponent.ID(),
		DestroyMarkerComponent.ID(), GameOverComponent.ID(), PlayerTagComponent.ID(),
	}
	seen := make(map[ComponentID]bool)
	for _, id := range ids {
		if id == 0 || seen[id] {
			t.Fatalf("component id %d is zero or duplicated", id)
		}
		seen[id] = true
	}
}
