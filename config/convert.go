package config

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/physics"
	"github.com/milk9111/goldminer/rope"
	"gonum.org/v1/gonum/spatial/r2"
)

// RopeParams converts the rope section into state machine parameters.
func (c *Config) RopeParams() rope.Params {
	r := c.Rope
	return rope.Params{
		MaxAngle:       r.MaxAngle,
		SwingSpeed:     r.SwingSpeed,
		RestLength:     r.RestLength,
		MaxLength:      r.MaxLength,
		ExtendSpeed:    r.ExtendSpeed,
		RetractSpeed:   r.RetractSpeed,
		DT:             c.Game.DT,
		ArriveDistance: r.ArriveDistance,
		WinchOffset:    r2.Vec{X: r.WinchOffsetX, Y: r.WinchOffsetY},
	}
}

func (c *Config) PhysicsWorld() physics.Config {
	return physics.Config{
		Gravity:      cp.Vector{X: 0, Y: c.Physics.Gravity},
		Iterations:   c.Physics.Iterations,
		HitThreshold: c.Physics.HitThreshold,
	}
}
