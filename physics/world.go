package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

const collisionTypeHit cp.CollisionType = 1

type Config struct {
	// Gravity in units per second squared.
	Gravity    cp.Vector
	Iterations int
	// HitThreshold drops contacts whose approach speed is below it.
	HitThreshold float64
}

func DefaultConfig() Config {
	return Config{
		Gravity:      cp.Vector{X: 0, Y: 9.8},
		Iterations:   10,
		HitThreshold: 0.0001,
	}
}

// World owns a Chipmunk space and every body and joint created through it.
// It is not safe for concurrent use.
type World struct {
	space     *cp.Space
	cfg       Config
	bodies    []*bodyEntry
	freeBody  []uint32
	joints    []*jointEntry
	freeJoint []uint32
	hits      []Hit
}

func NewWorld(cfg Config) *World {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultConfig().Iterations
	}

	space := cp.NewSpace()
	space.SetGravity(cfg.Gravity)
	space.Iterations = uint(cfg.Iterations)

	w := &World{space: space, cfg: cfg}

	handler := space.NewWildcardCollisionHandler(collisionTypeHit)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		w.recordHit(arb)
		return true
	}

	return w
}

func (w *World) Space() *cp.Space {
	return w.space
}

func (w *World) BodyCount() int {
	return len(w.bodies) - len(w.freeBody)
}

func (w *World) JointCount() int {
	return len(w.joints) - len(w.freeJoint)
}

func (w *World) CreateBody(def BodyDef) (BodyHandle, error) {
	if err := def.Shape.validate(); err != nil {
		return BodyHandle{}, err
	}

	var body *cp.Body
	switch def.Type {
	case Dynamic:
		mass := def.Density * def.Shape.area()
		if mass <= 0 {
			return BodyHandle{}, fmt.Errorf("physics: create body: non-positive mass: %w", ErrInvalidShape)
		}
		body = cp.NewBody(mass, def.Shape.moment(mass))
	default:
		body = cp.NewStaticBody()
	}
	body.SetPosition(def.Position)
	body.SetAngle(def.Angle)

	shape := def.Shape.build(body)
	shape.SetDensity(def.Density)
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Elasticity)
	if def.HitEvents {
		shape.SetCollisionType(collisionTypeHit)
	}

	h, entry := w.allocBody()
	entry.body = body
	entry.shape = shape
	entry.gravityScale = 1
	body.UserData = h

	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(entry.gravityScale), damping, dt)
	})

	w.space.AddBody(body)
	w.space.AddShape(shape)

	return h, nil
}

// DestroyBody removes the body, its shape, every joint touching it and the
// owner back-reference. Unknown handles are ignored.
func (w *World) DestroyBody(h BodyHandle) {
	entry, ok := w.body(h)
	if !ok {
		return
	}

	for j := range entry.joints {
		w.DestroyJoint(j)
	}

	w.space.RemoveShape(entry.shape)
	w.space.RemoveBody(entry.body)
	entry.body.UserData = nil

	gen := entry.gen
	*entry = bodyEntry{gen: gen + 1}
	w.freeBody = append(w.freeBody, h.index)
}

func (w *World) Exists(h BodyHandle) bool {
	_, ok := w.body(h)
	return ok
}

func (w *World) SetOwner(h BodyHandle, owner any) error {
	entry, ok := w.body(h)
	if !ok {
		return ErrUnknownBody
	}
	entry.owner = owner
	entry.hasOwner = true
	return nil
}

func (w *World) Owner(h BodyHandle) (any, bool) {
	entry, ok := w.body(h)
	if !ok || !entry.hasOwner {
		return nil, false
	}
	return entry.owner, true
}

func (w *World) Transform(h BodyHandle) (cp.Vector, float64, bool) {
	entry, ok := w.body(h)
	if !ok {
		return cp.Vector{}, 0, false
	}
	return entry.body.Position(), entry.body.Angle(), true
}

// SetTransform places a body. Static bodies are positioned at creation only.
func (w *World) SetTransform(h BodyHandle, pos cp.Vector, angle float64) {
	entry, ok := w.body(h)
	if !ok {
		return
	}
	entry.body.SetPosition(pos)
	entry.body.SetAngle(angle)
}

func (w *World) Velocity(h BodyHandle) (cp.Vector, bool) {
	entry, ok := w.body(h)
	if !ok {
		return cp.Vector{}, false
	}
	return entry.body.Velocity(), true
}

func (w *World) SetVelocity(h BodyHandle, v cp.Vector) {
	if entry, ok := w.body(h); ok {
		entry.body.SetVelocityVector(v)
	}
}

func (w *World) SetAngularVelocity(h BodyHandle, av float64) {
	if entry, ok := w.body(h); ok {
		entry.body.SetAngularVelocity(av)
	}
}

func (w *World) SetGravityScale(h BodyHandle, scale float64) {
	if entry, ok := w.body(h); ok {
		entry.gravityScale = scale
	}
}

func (w *World) GravityScale(h BodyHandle) float64 {
	if entry, ok := w.body(h); ok {
		return entry.gravityScale
	}
	return 0
}

// SetDynamic turns a static body dynamic. It reports false when the body is
// unknown or already dynamic.
func (w *World) SetDynamic(h BodyHandle) bool {
	entry, ok := w.body(h)
	if !ok || entry.body.GetType() == cp.BODY_DYNAMIC {
		return false
	}
	entry.body.SetType(cp.BODY_DYNAMIC)
	return true
}

func (w *World) IsDynamic(h BodyHandle) bool {
	entry, ok := w.body(h)
	return ok && entry.body.GetType() == cp.BODY_DYNAMIC
}

// CreateWeldJoint locks b to a at their current relative pose. The two
// bodies stop colliding with each other while joined.
func (w *World) CreateWeldJoint(a, b BodyHandle) (JointHandle, error) {
	ea, ok := w.body(a)
	if !ok {
		return JointHandle{}, fmt.Errorf("physics: weld joint: body a: %w", ErrUnknownBody)
	}
	eb, ok := w.body(b)
	if !ok {
		return JointHandle{}, fmt.Errorf("physics: weld joint: body b: %w", ErrUnknownBody)
	}

	anchor := ea.body.WorldToLocal(eb.body.Position())
	pivot := cp.NewPivotJoint2(ea.body, eb.body, anchor, cp.Vector{})
	pivot.SetCollideBodies(false)

	rel := eb.body.Angle() - ea.body.Angle()
	lock := cp.NewRotaryLimitJoint(ea.body, eb.body, rel, rel)
	lock.SetCollideBodies(false)

	w.space.AddConstraint(pivot)
	w.space.AddConstraint(lock)

	h, entry := w.allocJoint()
	entry.a = a
	entry.b = b
	entry.constraints = []*cp.Constraint{pivot, lock}

	ea.joints[h] = struct{}{}
	eb.joints[h] = struct{}{}

	return h, nil
}

func (w *World) DestroyJoint(h JointHandle) {
	entry, ok := w.joint(h)
	if !ok {
		return
	}

	for _, c := range entry.constraints {
		w.space.RemoveConstraint(c)
	}
	if ea, ok := w.body(entry.a); ok {
		delete(ea.joints, h)
	}
	if eb, ok := w.body(entry.b); ok {
		delete(eb.joints, h)
	}

	gen := entry.gen
	*entry = jointEntry{gen: gen + 1}
	w.freeJoint = append(w.freeJoint, h.index)
}

func (w *World) JointExists(h JointHandle) bool {
	_, ok := w.joint(h)
	return ok
}

func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// DrainHits returns the hits recorded since the previous call.
func (w *World) DrainHits() []Hit {
	hits := w.hits
	w.hits = nil
	return hits
}

func (w *World) recordHit(arb *cp.Arbiter) {
	sa, sb := arb.Shapes()
	ha, okA := sa.Body().UserData.(BodyHandle)
	hb, okB := sb.Body().UserData.(BodyHandle)
	if !okA || !okB {
		return
	}

	n := arb.Normal()
	rel := sa.Body().Velocity().Sub(sb.Body().Velocity())
	speed := math.Abs(rel.Dot(n))
	if speed < w.cfg.HitThreshold {
		return
	}

	w.hits = append(w.hits, Hit{A: ha, B: hb, Normal: n, Speed: speed})
}

func (w *World) allocBody() (BodyHandle, *bodyEntry) {
	if n := len(w.freeBody); n > 0 {
		idx := w.freeBody[n-1]
		w.freeBody = w.freeBody[:n-1]
		entry := w.bodies[idx]
		entry.joints = make(map[JointHandle]struct{})
		return BodyHandle{index: idx, gen: entry.gen}, entry
	}
	entry := &bodyEntry{gen: 1, joints: make(map[JointHandle]struct{})}
	w.bodies = append(w.bodies, entry)
	return BodyHandle{index: uint32(len(w.bodies) - 1), gen: 1}, entry
}

func (w *World) body(h BodyHandle) (*bodyEntry, bool) {
	if !h.Valid() || int(h.index) >= len(w.bodies) {
		return nil, false
	}
	entry := w.bodies[h.index]
	if entry.gen != h.gen || entry.body == nil {
		return nil, false
	}
	return entry, true
}

func (w *World) allocJoint() (JointHandle, *jointEntry) {
	if n := len(w.freeJoint); n > 0 {
		idx := w.freeJoint[n-1]
		w.freeJoint = w.freeJoint[:n-1]
		entry := w.joints[idx]
		return JointHandle{index: idx, gen: entry.gen}, entry
	}
	entry := &jointEntry{gen: 1}
	w.joints = append(w.joints, entry)
	return JointHandle{index: uint32(len(w.joints) - 1), gen: 1}, entry
}

func (w *World) joint(h JointHandle) (*jointEntry, bool) {
	if !h.Valid() || int(h.index) >= len(w.joints) {
		return nil, false
	}
	entry := w.joints[h.index]
	if entry.gen != h.gen || entry.constraints == nil {
		return nil, false
	}
	return entry, true
}
