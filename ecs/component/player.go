package component

// PlayerInput is latched by the input system and cleared by the rope system
// on the next tick, whether or not the rope could fire.
type PlayerInput struct {
	Fire bool
}

var PlayerInputComponent = NewComponent[PlayerInput]()

type Score struct {
	Points int
}

var ScoreComponent = NewComponent[Score]()
