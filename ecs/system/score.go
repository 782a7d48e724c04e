package system

import (
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"go.uber.org/zap"
)

// ScoreSystem credits each collected item's value, as recorded in Collected,
// to the player who reeled it in. Collected is removed once credited, so an item scores once.
type ScoreSystem struct {
	log *zap.Logger
}

func NewScoreSystem(log *zap.Logger) *ScoreSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScoreSystem{log: log}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.CollectedComponent, component.ItemComponent, component.DestroyMarkerComponent) {
		collected := ecs.Get(w, e, component.CollectedComponent)
		item := ecs.Get(w, e, component.ItemComponent)

		player, ok := findPlayer(w, collected.Player)
		if !ok {
			s.log.Warn("collected item has no player", zap.Uint64("item", uint64(e)), zap.Int("player", collected.Player))
			ecs.Remove(w, e, component.CollectedComponent)
			continue
		}
		if score, ok := ecs.TryGet(w, player, component.ScoreComponent); ok {
			score.Points += collected.Value
			s.log.Info("scored",
				zap.Int("player", collected.Player),
				zap.Stringer("item", item.Category),
				zap.Int("value", collected.Value),
				zap.Int("total", score.Points))
		}
		ecs.Remove(w, e, component.CollectedComponent)
	}
}
