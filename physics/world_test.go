package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func circleDef(typ BodyType, pos cp.Vector) BodyDef {
	return BodyDef{
		Type:     typ,
		Position: pos,
		Shape:    Shape{Kind: Circle, Radius: 0.3},
		Density:  1,
		Friction: 0.5,
	}
}

func TestScaleRoundTrip(t *testing.T) {
	tests := []float64{0, 1, -3.5, 50, 123.456, 1280}
	for _, px := range tests {
		if got := ToPixels(ToUnits(px)); math.Abs(got-px) > 1e-9 {
			t.Fatalf("round trip %v: got %v", px, got)
		}
	}

	v := cp.Vector{X: 570, Y: 10}
	u := VecToUnits(v)
	if u.X != 11.4 || u.Y != 0.2 {
		t.Fatalf("expected (11.4, 0.2), got %v", u)
	}
	if back := VecToPixels(u); math.Abs(back.X-v.X) > 1e-9 || math.Abs(back.Y-v.Y) > 1e-9 {
		t.Fatalf("expected %v, got %v", v, back)
	}
}

func TestCreateBodyRejectsInvalidShapes(t *testing.T) {
	w := NewWorld(DefaultConfig())

	tests := []struct {
		name  string
		shape Shape
	}{
		{name: "zero radius", shape: Shape{Kind: Circle}},
		{name: "two vertices", shape: Shape{Kind: Polygon, Vertices: []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}}}},
		{name: "unknown kind", shape: Shape{Kind: ShapeKind(9), Radius: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.CreateBody(BodyDef{Shape: tt.shape, Density: 1})
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("expected ErrInvalidShape, got %v", err)
			}
		})
	}

	if w.BodyCount() != 0 {
		t.Fatalf("expected no bodies, got %d", w.BodyCount())
	}
}

func TestDestroyBodyFreesOwner(t *testing.T) {
	w := NewWorld(DefaultConfig())

	h, err := w.CreateBody(circleDef(Static, cp.Vector{X: 1, Y: 1}))
	if err != nil {
		t.Fatalf("create body: %v", err)
	}
	if err := w.SetOwner(h, uint64(7)); err != nil {
		t.Fatalf("set owner: %v", err)
	}
	if owner, ok := w.Owner(h); !ok || owner.(uint64) != 7 {
		t.Fatalf("expected owner 7, got %v %v", owner, ok)
	}

	w.DestroyBody(h)

	if _, ok := w.Owner(h); ok {
		t.Fatalf("owner still resolvable after destroy")
	}
	if w.Exists(h) {
		t.Fatalf("body still exists after destroy")
	}
	if err := w.SetOwner(h, uint64(8)); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}

	// the slot is recycled under a new generation
	h2, err := w.CreateBody(circleDef(Static, cp.Vector{}))
	if err != nil {
		t.Fatalf("create body: %v", err)
	}
	if h2 == h {
		t.Fatalf("recycled handle equals destroyed handle")
	}
	if _, ok := w.Owner(h2); ok {
		t.Fatalf("fresh body inherited an owner")
	}
	if w.Exists(h) {
		t.Fatalf("stale handle resolves to recycled slot")
	}
}

func TestSetDynamicOnce(t *testing.T) {
	w := NewWorld(DefaultConfig())

	h, err := w.CreateBody(circleDef(Static, cp.Vector{X: 2, Y: 2}))
	if err != nil {
		t.Fatalf("create body: %v", err)
	}
	if w.IsDynamic(h) {
		t.Fatalf("expected static body")
	}
	if !w.SetDynamic(h) {
		t.Fatalf("first SetDynamic should succeed")
	}
	if !w.IsDynamic(h) {
		t.Fatalf("expected dynamic body")
	}
	if w.SetDynamic(h) {
		t.Fatalf("second SetDynamic should report false")
	}
}

func TestWeldJointLifecycle(t *testing.T) {
	w := NewWorld(DefaultConfig())

	rope, err := w.CreateBody(circleDef(Dynamic, cp.Vector{X: 5, Y: 5}))
	if err != nil {
		t.Fatalf("create rope: %v", err)
	}
	item, err := w.CreateBody(circleDef(Static, cp.Vector{X: 5, Y: 5.5}))
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	if _, err := w.CreateWeldJoint(rope, BodyHandle{}); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}

	w.SetDynamic(item)
	j, err := w.CreateWeldJoint(rope, item)
	if err != nil {
		t.Fatalf("weld: %v", err)
	}
	if !w.JointExists(j) || w.JointCount() != 1 {
		t.Fatalf("expected one live joint")
	}

	w.DestroyJoint(j)
	if w.JointExists(j) || w.JointCount() != 0 {
		t.Fatalf("joint survived DestroyJoint")
	}

	// destroying a body takes its joints with it
	j2, err := w.CreateWeldJoint(rope, item)
	if err != nil {
		t.Fatalf("weld: %v", err)
	}
	w.DestroyBody(item)
	if w.JointExists(j2) {
		t.Fatalf("joint survived its body")
	}
	if w.BodyCount() != 1 {
		t.Fatalf("expected 1 body, got %d", w.BodyCount())
	}
}

func TestGravityScale(t *testing.T) {
	w := NewWorld(DefaultConfig())

	h, err := w.CreateBody(circleDef(Dynamic, cp.Vector{}))
	if err != nil {
		t.Fatalf("create body: %v", err)
	}
	if got := w.GravityScale(h); got != 1 {
		t.Fatalf("expected default gravity scale 1, got %v", got)
	}

	w.SetGravityScale(h, 0)
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}
	if v, _ := w.Velocity(h); v.Y != 0 {
		t.Fatalf("expected no fall with gravity scale 0, got %v", v)
	}

	w.SetGravityScale(h, 1)
	w.Step(1.0 / 60.0)
	if v, _ := w.Velocity(h); v.Y <= 0 {
		t.Fatalf("expected downward velocity, got %v", v)
	}
}

func TestHitsAreDrained(t *testing.T) {
	w := NewWorld(DefaultConfig())

	rope := circleDef(Dynamic, cp.Vector{X: 0, Y: 0})
	rope.HitEvents = true
	rh, err := w.CreateBody(rope)
	if err != nil {
		t.Fatalf("create rope: %v", err)
	}
	w.SetGravityScale(rh, 0)

	ih, err := w.CreateBody(circleDef(Static, cp.Vector{X: 0, Y: 1}))
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	w.SetVelocity(rh, cp.Vector{X: 0, Y: 6})
	var hits []Hit
	for i := 0; i < 30 && len(hits) == 0; i++ {
		w.Step(1.0 / 60.0)
		hits = append(hits, w.DrainHits()...)
	}

	if len(hits) == 0 {
		t.Fatalf("expected a hit")
	}
	other, ok := hits[0].Other(rh)
	if !ok || other != ih {
		t.Fatalf("expected hit against item, got %+v", hits[0])
	}
	if len(w.DrainHits()) != 0 {
		t.Fatalf("hits were not drained")
	}
}

func TestSetTransformMovesDynamicBody(t *testing.T) {
	w := NewWorld(DefaultConfig())
	h, err := w.CreateBody(circleDef(Dynamic, cp.Vector{X: 1, Y: 1}))
	if err != nil {
		t.Fatalf("create body: %v", err)
	}

	w.SetTransform(h, cp.Vector{X: 4, Y: 2}, 0.5)
	pos, angle, ok := w.Transform(h)
	if !ok || pos.X != 4 || pos.Y != 2 || angle != 0.5 {
		t.Fatalf("expected (4, 2) at 0.5, got %v at %v (%v)", pos, angle, ok)
	}

	w.Step(1.0 / 60)
	if pos, _, _ := w.Transform(h); pos.Y <= 2 {
		t.Fatalf("moved body did not simulate from its new position: %v", pos)
	}

	w.DestroyBody(h)
	w.SetTransform(h, cp.Vector{X: 9, Y: 9}, 0)
	if _, _, ok := w.Transform(h); ok {
		t.Fatalf("stale handle resolved after SetTransform")
	}
}
