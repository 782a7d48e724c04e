package component

// Position is in pixels: the top-left corner for sprites, the tip for ropes.
// Entities with a PhysicsBody have their Position written from the body.
type Position struct {
	X float64
	Y float64
}

var PositionComponent = NewComponent[Position]()
