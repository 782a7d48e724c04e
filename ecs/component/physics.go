package component

import "github.com/milk9111/goldminer/physics"

// PhysicsBody links an entity to the body it exclusively owns. Removing the
// component destroys the body.
type PhysicsBody struct {
	Handle physics.BodyHandle
	// Center records whether Position is derived from the body's center
	// (items) rather than used as-is (ropes).
	Center bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
