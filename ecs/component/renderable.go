package component

import "github.com/milk9111/goldminer/sprite"

type Renderable struct {
	Sprite sprite.ID
}

var RenderableComponent = NewComponent[Renderable]()
