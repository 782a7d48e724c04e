package component

import "github.com/milk9111/goldminer/physics"

// GrabbedLink is present on a rope while it holds an item.
type GrabbedLink struct {
	Joint physics.JointHandle
	Item  uint64 // ecs.Entity
}

var GrabbedLinkComponent = NewComponent[GrabbedLink]()
