package system

import (
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
)

// TimerSystem counts every player's timer down and tags expired timers
// with GameOver.
type TimerSystem struct {
	dt float64
}

func NewTimerSystem(dt float64) *TimerSystem {
	return &TimerSystem{dt: dt}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.GameTimerComponent, func(e ecs.Entity, t *component.GameTimer) {
		if ecs.Has(w, e, component.GameOverComponent) {
			return
		}
		t.TimeLeft -= s.dt
		if t.TimeLeft <= 0 {
			t.TimeLeft = 0
			_ = ecs.Add(w, e, component.GameOverComponent, component.GameOver{})
		}
	})
}

// RoundOver reports whether every timer has expired. A world without timers
// is not over.
func RoundOver(w *ecs.World) bool {
	timers := w.Query(component.GameTimerComponent)
	if len(timers) == 0 {
		return false
	}
	for _, e := range timers {
		if !ecs.Has(w, e, component.GameOverComponent) {
			return false
		}
	}
	return true
}

func timerExpired(w *ecs.World, p int) bool {
	for _, e := range w.Query(component.GameOverComponent, component.OwnerComponent) {
		if ecs.Get(w, e, component.OwnerComponent).Player == p {
			return true
		}
	}
	return false
}

// LifeTimeSystem marks entities for destruction when their lifetime runs out.
type LifeTimeSystem struct {
	dt float64
}

func NewLifeTimeSystem(dt float64) *LifeTimeSystem {
	return &LifeTimeSystem{dt: dt}
}

func (s *LifeTimeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.LifeTimeComponent, func(e ecs.Entity, lt *component.LifeTime) {
		lt.Remaining -= s.dt
		if lt.Remaining <= 0 && !ecs.Has(w, e, component.DestroyMarkerComponent) {
			_ = ecs.Add(w, e, component.DestroyMarkerComponent, component.DestroyMarker{})
		}
	})
}
