package physics

import "github.com/jakecoffman/cp"

// Hit is a begin-contact event between two bodies, at least one of which was
// created with HitEvents.
type Hit struct {
	A, B   BodyHandle
	Normal cp.Vector
	Speed  float64
}

// Other returns the participant that is not self.
func (h Hit) Other(self BodyHandle) (BodyHandle, bool) {
	switch self {
	case h.A:
		return h.B, true
	case h.B:
		return h.A, true
	}
	return BodyHandle{}, false
}
