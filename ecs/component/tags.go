package component

type Collectable struct{}

var CollectableComponent = NewComponent[Collectable]()

type RopeTag struct{}

var RopeTagComponent = NewComponent[RopeTag]()

type Collidable struct{}

var CollidableComponent = NewComponent[Collidable]()

// DestroyMarker requests removal by the destruction system at the end of
// the tick.
type DestroyMarker struct{}

var DestroyMarkerComponent = NewComponent[DestroyMarker]()

type GameOver struct{}

var GameOverComponent = NewComponent[GameOver]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
