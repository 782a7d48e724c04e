package component

type Mole struct {
	Speed       float64
	MovingRight bool
}

var MoleComponent = NewComponent[Mole]()
