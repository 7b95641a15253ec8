package component

// Input stores per-frame input state for an entity.
type Input struct {
	JumpPressed bool
	DuckHeld    bool

	PointerPressed  bool
	PressY          float64
	PointerReleased bool
	ReleaseY        float64
}

var InputComponent = NewComponent[Input]()
