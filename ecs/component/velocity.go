package component

// Velocity is a per-tick displacement in pixels for entities that move
// without a physics body.
type Velocity struct {
	DX float64
	DY float64
}

var VelocityComponent = NewComponent[Velocity]()
