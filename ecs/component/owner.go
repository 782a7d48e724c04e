package component

// Unowned marks entities that belong to no player.
const Unowned = -1

type Owner struct {
	Player int
}

var OwnerComponent = NewComponent[Owner]()
