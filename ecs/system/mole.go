package system

import (
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/rules"
	"github.com/milk9111/goldminer/sprite"
	"go.uber.org/zap"
)

// MoleSystem moves moles as the mole rule dictates. Without the rule moles
// stay where they were placed.
type MoleSystem struct {
	rules *rules.Runtime
	dt    float64
	width float64
	log   *zap.Logger
}

func NewMoleSystem(rt *rules.Runtime, dt, screenWidth float64, log *zap.Logger) *MoleSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MoleSystem{rules: rt, dt: dt, width: screenWidth, log: log}
}

func (s *MoleSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.rules.Has(rules.Mole) {
		return
	}

	for _, e := range w.Query(component.MoleComponent, component.PositionComponent) {
		mole := ecs.Get(w, e, component.MoleComponent)
		pos := ecs.Get(w, e, component.PositionComponent)

		maxX := s.width
		if r, ok := ecs.TryGet(w, e, component.RenderableComponent); ok {
			sw, _ := sprite.Size(r.Sprite)
			maxX -= sw
		}

		step, ok, err := s.rules.MoveMole(rules.MoleState{
			X:           pos.X,
			Y:           pos.Y,
			Speed:       mole.Speed,
			MovingRight: mole.MovingRight,
			DT:          s.dt,
			MinX:        0,
			MaxX:        maxX,
		})
		if err != nil {
			s.log.Warn("mole rule", zap.Uint64("mole", uint64(e)), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}

		pos.X += step.DX
		pos.Y += step.DY
		mole.MovingRight = step.MovingRight
		if v, ok := ecs.TryGet(w, e, component.VelocityComponent); ok {
			v.DX, v.DY = step.DX, step.DY
		}
	}
}
