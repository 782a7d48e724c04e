package physics

import "github.com/jakecoffman/cp"

// PixelsPerUnit converts between render-space pixels and physics units.
// Every value crossing the adapter boundary goes through these helpers.
const PixelsPerUnit = 50.0

func ToUnits(px float64) float64 {
	return px / PixelsPerUnit
}

func ToPixels(u float64) float64 {
	return u * PixelsPerUnit
}

func VecToUnits(v cp.Vector) cp.Vector {
	return cp.Vector{X: ToUnits(v.X), Y: ToUnits(v.Y)}
}

func VecToPixels(v cp.Vector) cp.Vector {
	return cp.Vector{X: ToPixels(v.X), Y: ToPixels(v.Y)}
}
