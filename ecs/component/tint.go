package component

import "image/color"

// Tint multiplies the sprite colour when drawn.
type Tint struct {
	Color color.RGBA
}

var TintComponent = NewComponent[Tint]()
