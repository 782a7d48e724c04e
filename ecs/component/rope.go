package component

import "github.com/milk9111/goldminer/rope"

type RopeState struct {
	rope.State
}

var RopeStateComponent = NewComponent[RopeState]()
