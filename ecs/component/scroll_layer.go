package component

// ScrollLayer is a horizontally tiled strip that moves left by Speed pixels
// per tick. Offset wraps at TileWidth.
type ScrollLayer struct {
	Speed     float64
	Offset    float64
	TileWidth float64
	Y         float64
	Height    float64
}

var ScrollLayerComponent = NewComponent[ScrollLayer]()
