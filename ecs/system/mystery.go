package system

import (
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/rules"
	"go.uber.org/zap"
)

// MysteryRevealSystem lets the mystery_bag rule revalue collected bags before
// they are scored. The reveal is written to Collected; Item keeps the declared
// value. Without the rule a bag scores its declared value.
type MysteryRevealSystem struct {
	rules *rules.Runtime
	log   *zap.Logger
}

func NewMysteryRevealSystem(rt *rules.Runtime, log *zap.Logger) *MysteryRevealSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MysteryRevealSystem{rules: rt, log: log}
}

func (s *MysteryRevealSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.rules.Has(rules.MysteryBag) {
		return
	}

	for _, e := range w.Query(component.CollectedComponent, component.ItemComponent) {
		item := ecs.Get(w, e, component.ItemComponent)
		if item.Category != component.MysteryBag {
			continue
		}
		collected := ecs.Get(w, e, component.CollectedComponent)

		res, ok, err := s.rules.RevealMystery(collected.Player, collected.Value, collected.Weight)
		if err != nil {
			s.log.Warn("mystery reveal", zap.Uint64("item", uint64(e)), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}
		collected.Value = res.Value
		collected.Weight = res.Weight
		s.log.Debug("mystery revealed", zap.Uint64("item", uint64(e)), zap.Int("value", res.Value))
	}
}
