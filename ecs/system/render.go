package system

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/goldminer/ecs"
	"github.com/milk9111/goldminer/ecs/component"
	"github.com/milk9111/goldminer/rope"
	"github.com/milk9111/goldminer/sprite"
	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	digitScale   = 0.75
	digitSpacing = 2
	hudWidth     = 320
)

// RenderSystem draws the playfield. It only reads the world.
type RenderSystem struct {
	atlas  *sprite.Atlas
	params func() rope.Params
}

func NewRenderSystem(atlas *sprite.Atlas, params func() rope.Params) *RenderSystem {
	return &RenderSystem{atlas: atlas, params: params}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	r.drawSprite(screen, sprite.Background, 0, 0, 1)

	for _, e := range w.Query(component.RenderableComponent, component.PositionComponent) {
		rd := ecs.Get(w, e, component.RenderableComponent)
		pos := ecs.Get(w, e, component.PositionComponent)
		r.drawSprite(screen, rd.Sprite, pos.X, pos.Y, 1)
	}

	r.drawRopes(w, screen)

	for _, e := range w.Query(component.UIComponent, component.OwnerComponent) {
		slot := ecs.Get(w, e, component.UIComponent).Slot
		r.drawHUD(screen, HUD(w, ecs.Get(w, e, component.OwnerComponent).Player), float64(slot*hudWidth+10))
	}
}

func (r *RenderSystem) drawRopes(w *ecs.World, screen *ebiten.Image) {
	params := rope.DefaultParams()
	if r.params != nil {
		params = r.params()
	}

	for _, e := range w.Query(component.RopeTagComponent, component.PositionComponent, component.OwnerComponent) {
		player, ok := findPlayer(w, ecs.Get(w, e, component.OwnerComponent).Player)
		if !ok {
			continue
		}
		pp := ecs.Get(w, player, component.PositionComponent)
		pivot := params.Pivot(r2.Vec{X: pp.X, Y: pp.Y})
		tip := ecs.Get(w, e, component.PositionComponent)

		clr := color.Color(colornames.Black)
		if ecs.Has(w, e, component.GrabbedLinkComponent) {
			clr = colornames.Darkred
		}
		vector.StrokeLine(screen, float32(pivot.X), float32(pivot.Y), float32(tip.X), float32(tip.Y), 3, clr, true)
		vector.DrawFilledCircle(screen, float32(tip.X), float32(tip.Y), 6, colornames.Dimgray, true)
	}
}

func (r *RenderSystem) drawHUD(screen *ebiten.Image, v HUDView, x float64) {
	mw, mh := sprite.Size(sprite.TitleMoney)
	r.drawSprite(screen, sprite.TitleMoney, x, 10, 1)
	r.drawNumber(screen, v.Score, x+mw+8, 10, mh)

	tw, th := sprite.Size(sprite.TitleTime)
	r.drawSprite(screen, sprite.TitleTime, x, 20+mh, 1)
	r.drawNumber(screen, v.Seconds, x+tw+8, 20+mh, th)
}

// drawNumber draws n with digit sprites scaled to fit height.
func (r *RenderSystem) drawNumber(screen *ebiten.Image, n int, x, y, height float64) {
	if n < 0 {
		n = 0
	}
	for _, ch := range strconv.Itoa(n) {
		id, ok := sprite.Digit(int(ch - '0'))
		if !ok {
			continue
		}
		dw, dh := sprite.Size(id)
		scale := digitScale
		if height > 0 && dh*scale > height {
			scale = height / dh
		}
		r.drawSprite(screen, id, x, y, scale)
		x += dw*scale + digitSpacing
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, id sprite.ID, x, y, scale float64) {
	if r.atlas == nil {
		return
	}
	img := r.atlas.Texture(id)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
