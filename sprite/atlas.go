package sprite

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/goldminer/assets"
	"go.uber.org/zap"
)

// Atlas hands out textures for sprite ids. A sprite whose file cannot be
// loaded is drawn as a flat placeholder of the same size.
type Atlas struct {
	loader  *assets.Loader
	log     *zap.Logger
	sheets  map[string]*ebiten.Image
	missing map[string]bool
	cache   [Count]*ebiten.Image
}

func NewAtlas(loader *assets.Loader, log *zap.Logger) *Atlas {
	if log == nil {
		log = zap.NewNop()
	}
	return &Atlas{
		loader:  loader,
		log:     log,
		sheets:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

func (a *Atlas) Rect(id ID) image.Rectangle {
	return Rect(id)
}

// Texture returns the image for id already cropped to its source rectangle.
func (a *Atlas) Texture(id ID) *ebiten.Image {
	if !id.Valid() {
		return nil
	}
	if img := a.cache[id]; img != nil {
		return img
	}

	e := table[id]
	var img *ebiten.Image
	if sheet := a.sheet(e.file); sheet != nil {
		img = sheet.SubImage(e.rect).(*ebiten.Image)
	} else {
		img = ebiten.NewImage(e.rect.Dx(), e.rect.Dy())
		img.Fill(e.color)
	}
	a.cache[id] = img
	return img
}

func (a *Atlas) sheet(file string) *ebiten.Image {
	if img, ok := a.sheets[file]; ok {
		return img
	}
	if a.missing[file] {
		return nil
	}
	img, err := a.loader.LoadImage(file)
	if err != nil {
		a.missing[file] = true
		a.log.Debug("sprite placeholder", zap.String("file", file), zap.Error(err))
		return nil
	}
	a.sheets[file] = img
	return img
}
