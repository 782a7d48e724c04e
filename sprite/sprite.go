// Package sprite maps sprite ids to source rectangles and textures.
package sprite

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

type ID int

const (
	Gold ID = iota
	Rock
	Diamond
	TreasureChest
	MysteryBag
	Bomb
	PlayerIdle
	TitleMoney
	TitleTime
	Background
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Count
)

type entry struct {
	file  string
	rect  image.Rectangle
	color color.RGBA
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

var table = [Count]entry{
	Gold:          {"gold.png", rect(0, 0, 35, 30), colornames.Gold},
	Rock:          {"rock.png", rect(0, 0, 77, 87), colornames.Slategray},
	Diamond:       {"diamond.png", rect(0, 0, 41, 32), colornames.Lightcyan},
	TreasureChest: {"treasureChest.png", rect(33, 50, 88, 82), colornames.Saddlebrown},
	MysteryBag:    {"mysteryBag.png", rect(0, 0, 44, 50), colornames.Tan},
	Bomb:          {"bom.png", rect(0, 0, 77, 67), colornames.Darkred},
	PlayerIdle:    {"player.png", rect(0, 7, 164, 169), colornames.Peru},
	TitleMoney:    {"titleMoney.png", rect(0, 0, 112, 32), colornames.Darkgreen},
	TitleTime:     {"titleTime.png", rect(0, 0, 83, 25), colornames.Darkblue},
	Background:    {"background.png", rect(0, 0, 1280, 720), colornames.Burlywood},
	Digit0:        {"numbers.png", rect(20, 55, 30, 52), colornames.White},
	Digit1:        {"numbers.png", rect(61, 55, 24, 53), colornames.White},
	Digit2:        {"numbers.png", rect(96, 55, 32, 52), colornames.White},
	Digit3:        {"numbers.png", rect(135, 52, 31, 55), colornames.White},
	Digit4:        {"numbers.png", rect(173, 49, 31, 58), colornames.White},
	Digit5:        {"numbers.png", rect(19, 116, 30, 56), colornames.White},
	Digit6:        {"numbers.png", rect(60, 115, 29, 53), colornames.White},
	Digit7:        {"numbers.png", rect(98, 112, 28, 58), colornames.White},
	Digit8:        {"numbers.png", rect(137, 116, 27, 55), colornames.White},
	Digit9:        {"numbers.png", rect(175, 118, 28, 54), colornames.White},
}

func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// Rect returns the source rectangle of id inside its texture. Unknown ids
// yield an empty rectangle.
func Rect(id ID) image.Rectangle {
	if !id.Valid() {
		return image.Rectangle{}
	}
	return table[id].rect
}

// Size returns the width and height of id in pixels.
func Size(id ID) (float64, float64) {
	r := Rect(id)
	return float64(r.Dx()), float64(r.Dy())
}

// Digit returns the sprite for a decimal digit.
func Digit(d int) (ID, bool) {
	if d < 0 || d > 9 {
		return 0, false
	}
	return Digit0 + ID(d), true
}
