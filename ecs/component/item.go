package component

type Category int

const (
	Gold Category = iota
	Rock
	Diamond
	TreasureChest
	MysteryBag
)

func (c Category) String() string {
	switch c {
	case Gold:
		return "gold"
	case Rock:
		return "rock"
	case Diamond:
		return "diamond"
	case TreasureChest:
		return "treasure_chest"
	case MysteryBag:
		return "mystery_bag"
	default:
		return "unknown"
	}
}

// ParseCategory accepts the names produced by String.
func ParseCategory(s string) (Category, bool) {
	for c := Gold; c <= MysteryBag; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

type Item struct {
	Category Category
	Value    int
	Weight   float64
}

// ItemFor returns the stock value and weight of a category.
func ItemFor(c Category) Item {
	switch c {
	case Gold:
		return Item{Category: c, Value: 70, Weight: 5}
	case Rock, Diamond:
		return Item{Category: c, Value: 100, Weight: 1}
	case TreasureChest:
		return Item{Category: c, Value: 100, Weight: 3}
	default:
		return Item{Category: MysteryBag, Value: 0, Weight: 1}
	}
}

var ItemComponent = NewComponent[Item]()
