package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/physics"
)

// Release detaches whatever the rope holds, marks the item as collected by
// the rope's player and queues it for destruction. It reports whether the
// rope was holding anything.
func Release(w *ecs.World, pw *physics.World, ropeEnt ecs.Entity) bool {
	link, ok := ecs.TryGet(w, ropeEnt, component.GrabbedLinkComponent)
	if !ok {
		return false
	}
	joint := link.Joint
	item := ecs.Entity(link.Item)

	pw.DestroyJoint(joint)
	ecs.Remove(w, ropeEnt, component.GrabbedLinkComponent)

	player := component.Unowned
	if owner, ok := ecs.TryGet(w, ropeEnt, component.OwnerComponent); ok {
		player = owner.Player
	}

	if w.IsAlive(item) {
		collected := component.Collected{Player: player}
		if it, ok := ecs.TryGet(w, item, component.ItemComponent); ok {
			collected.Value, collected.Weight = it.Value, it.Weight
		}
		_ = ecs.Add(w, item, component.CollectedComponent, collected)
		_ = ecs.Add(w, item, component.DestroyMarkerComponent, component.DestroyMarker{})
	}

	if pb, ok := ecs.TryGet(w, ropeEnt, component.PhysicsBodyComponent); ok {
		pw.SetVelocity(pb.Handle, cp.Vector{})
		pw.SetAngularVelocity(pb.Handle, 0)
		pw.SetGravityScale(pb.Handle, 0)
	}
	return true
}
