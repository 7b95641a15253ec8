package component

// Transform positions an entity. X and Y are the sprite center in screen
// pixels; the physics system keeps them in sync with the body.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
