package system

import (
	"math"

	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
)

// HUDView is what a player's HUD shows.
type HUDView struct {
	Score    int
	TimeLeft float64
	// Seconds is TimeLeft rounded up, as displayed.
	Seconds int
	Over    bool
}

// HUD gathers player p's score and time. Missing pieces read as zero.
func HUD(w *ecs.World, p int) HUDView {
	var v HUDView
	if player, ok := findPlayer(w, p); ok {
		if s, ok := ecs.TryGet(w, player, component.ScoreComponent); ok {
			v.Score = s.Points
		}
	}
	for _, e := range w.Query(component.GameTimerComponent, component.OwnerComponent) {
		if ecs.Get(w, e, component.OwnerComponent).Player != p {
			continue
		}
		v.TimeLeft = ecs.Get(w, e, component.GameTimerComponent).TimeLeft
		v.Seconds = int(math.Ceil(v.TimeLeft))
		v.Over = ecs.Has(w, e, component.GameOverComponent)
		break
	}
	return v
}
