package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image     *ebiten.Image
	Key       string
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	FlipX     bool
	Hidden    bool
}

var SpriteComponent = NewComponent[Sprite]()
