package component

// UI anchors a player's HUD. Slot orders HUDs left to right.
type UI struct {
	Slot int
}

var UIComponent = NewComponent[UI]()
