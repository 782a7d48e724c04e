package component

// Collected is added to an item when a rope delivers it. Value starts as the
// item's declared value and may be revealed differently before scoring; the
// score system credits Value to Player and removes the component.
type Collected struct {
	Player int
	Value  int
	Weight float64
}

var CollectedComponent = NewComponent[Collected]()
