// Package rope holds the claw rope's state machine as a pure function so it
// can be driven by the game loop and by tests alike.
//
// Input.Fire only has an effect at rest. Callers present a press for a
// single tick: a press made while the rope is out is dropped, not queued
// until the rope returns.
package rope

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type Phase int

const (
	AtRest Phase = iota
	Extending
	Retracting
)

func (p Phase) String() string {
	switch p {
	case AtRest:
		return "at_rest"
	case Extending:
		return "extending"
	case Retracting:
		return "retracting"
	default:
		return "unknown"
	}
}

// State is the persistent rope state. Angle is in degrees, zero pointing
// straight down; Length is how far the rope reaches past its rest length.
type State struct {
	Phase    Phase
	Length   float64
	Angle    float64
	SwingDir float64
}

// Input is what the rope sees of the world for one tick. Positions are in
// pixels.
type Input struct {
	Fire    bool
	Pivot   r2.Vec
	Tip     r2.Vec
	Holding bool
}

// Effects describe what the caller must apply to the rope body this tick.
type Effects struct {
	// Teleport places the body at Target and zeroes its velocity.
	Teleport bool
	Target   r2.Vec
	// Velocity is in pixels per second and is applied when Teleport is false.
	Velocity     r2.Vec
	GravityScale float64
	// FireConsumed is set when the fire press started an extension.
	FireConsumed bool
	// Released is set on the Retracting to AtRest transition while holding.
	Released bool
}

type Params struct {
	MaxAngle     float64
	SwingSpeed   float64
	RestLength   float64
	MaxLength    float64
	ExtendSpeed  float64
	RetractSpeed float64
	DT           float64
	// ArriveDistance is how close, in pixels, the tip must be to its target
	// before steering stops.
	ArriveDistance float64
	WinchOffset    r2.Vec
}

func DefaultParams() Params {
	return Params{
		MaxAngle:       75,
		SwingSpeed:     90,
		RestLength:     80,
		MaxLength:      800,
		ExtendSpeed:    600,
		RetractSpeed:   900,
		DT:             1.0 / 60.0,
		ArriveDistance: 0.5,
		WinchOffset:    r2.Vec{X: -164 * 0.001, Y: 169 * 1.1},
	}
}

// Advance runs one tick of the rope state machine.
func Advance(s State, in Input, p Params) (State, Effects) {
	if s.SwingDir == 0 {
		s.SwingDir = 1
	}

	var fx Effects
	if s.Phase == AtRest && in.Fire {
		s.Phase = Extending
		fx.FireConsumed = true
	}

	switch s.Phase {
	case AtRest:
		s.Angle += s.SwingDir * p.SwingSpeed * p.DT
		if s.Angle > p.MaxAngle {
			s.Angle = p.MaxAngle
			s.SwingDir = -1
		} else if s.Angle < -p.MaxAngle {
			s.Angle = -p.MaxAngle
			s.SwingDir = 1
		}
		s.Length = 0
		fx.Teleport = true
		fx.Target = TipAt(in.Pivot, s.Angle, p.RestLength)
		fx.GravityScale = 0
		return s, fx

	case Extending:
		s.Length += p.ExtendSpeed * p.DT
		if s.Length >= p.MaxLength {
			s.Length = p.MaxLength
			s.Phase = Retracting
		}
		fx.Target = TipAt(in.Pivot, s.Angle, p.RestLength+s.Length)
		fx.Velocity = steer(in.Tip, fx.Target, p.ExtendSpeed, p.ArriveDistance)
		fx.GravityScale = 1
		return s, fx

	case Retracting:
		s.Length -= p.RetractSpeed * p.DT
		if s.Length <= 0 {
			s.Length = 0
			s.Phase = AtRest
			fx.Target = TipAt(in.Pivot, s.Angle, p.RestLength)
			fx.Released = in.Holding
			return s, fx
		}
		fx.Target = TipAt(in.Pivot, s.Angle, p.RestLength+s.Length)
		fx.Velocity = steer(in.Tip, fx.Target, p.RetractSpeed, p.ArriveDistance)
		fx.GravityScale = 1
		return s, fx
	}

	return s, fx
}

// Grab switches a fired rope to Retracting. A rope at rest cannot grab.
func Grab(s State) (State, bool) {
	switch s.Phase {
	case Extending, Retracting:
		s.Phase = Retracting
		return s, true
	default:
		return s, false
	}
}

// Pivot is the winch point for a player positioned at pos.
func (p Params) Pivot(pos r2.Vec) r2.Vec {
	return r2.Add(pos, p.WinchOffset)
}

// TipAt returns the point dist pixels from pivot along angleDeg, measured
// from straight down.
func TipAt(pivot r2.Vec, angleDeg, dist float64) r2.Vec {
	rad := angleDeg * math.Pi / 180
	return r2.Add(pivot, r2.Scale(dist, r2.Vec{X: math.Sin(rad), Y: math.Cos(rad)}))
}

func steer(from, to r2.Vec, speed, arrive float64) r2.Vec {
	d := r2.Sub(to, from)
	if r2.Norm(d) <= arrive {
		return r2.Vec{}
	}
	return r2.Scale(speed, r2.Unit(d))
}
