package physics

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var (
	ErrInvalidShape = errors.New("physics: invalid shape")
	ErrUnknownBody  = errors.New("physics: unknown body")
)

// BodyHandle refers to a body slot in a World. Slots are recycled with a new
// generation, so a handle kept past DestroyBody never resolves again.
type BodyHandle struct {
	index uint32
	gen   uint32
}

func (h BodyHandle) Valid() bool {
	return h.gen != 0
}

// JointHandle refers to a joint slot in a World.
type JointHandle struct {
	index uint32
	gen   uint32
}

func (h JointHandle) Valid() bool {
	return h.gen != 0
}

type BodyType int

const (
	Static BodyType = iota
	Dynamic
)

type ShapeKind int

const (
	Circle ShapeKind = iota
	Polygon
)

// Shape is a single collision shape in body-local units.
type Shape struct {
	Kind     ShapeKind
	Radius   float64
	Vertices []cp.Vector
}

// BodyDef describes a body to create. Position is in physics units.
type BodyDef struct {
	Type       BodyType
	Position   cp.Vector
	Angle      float64
	Shape      Shape
	Density    float64
	Friction   float64
	Elasticity float64
	// HitEvents makes contacts involving this body show up in DrainHits.
	HitEvents bool
	// Bullet is accepted for parity with engines that expose continuous
	// collision; Chipmunk always sweeps dynamic shapes the same way.
	Bullet bool
}

type bodyEntry struct {
	gen          uint32
	body         *cp.Body
	shape        *cp.Shape
	owner        any
	hasOwner     bool
	gravityScale float64
	joints       map[JointHandle]struct{}
}

type jointEntry struct {
	gen         uint32
	a, b        BodyHandle
	constraints []*cp.Constraint
}

func (s Shape) validate() error {
	switch s.Kind {
	case Circle:
		if s.Radius <= 0 {
			return ErrInvalidShape
		}
	case Polygon:
		if len(s.Vertices) < 3 {
			return ErrInvalidShape
		}
	default:
		return ErrInvalidShape
	}
	return nil
}

func (s Shape) area() float64 {
	if s.Kind == Circle {
		return cp.AreaForCircle(0, s.Radius)
	}
	return cp.AreaForPoly(len(s.Vertices), s.Vertices, 0)
}

func (s Shape) moment(mass float64) float64 {
	if s.Kind == Circle {
		return cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
	}
	return cp.MomentForPoly(mass, len(s.Vertices), s.Vertices, cp.Vector{}, 0)
}

func (s Shape) build(body *cp.Body) *cp.Shape {
	if s.Kind == Circle {
		return cp.NewCircle(body, s.Radius, cp.Vector{})
	}
	return cp.NewPolyShape(body, len(s.Vertices), s.Vertices, cp.NewTransformIdentity(), 0)
}
