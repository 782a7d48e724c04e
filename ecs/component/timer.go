package component

// GameTimer counts a player's remaining time in seconds.
type GameTimer struct {
	TimeLeft float64
}

var GameTimerComponent = NewComponent[GameTimer]()

// LifeTime marks an entity for destruction once Remaining reaches zero.
type LifeTime struct {
	Remaining float64
}

var LifeTimeComponent = NewComponent[LifeTime]()
