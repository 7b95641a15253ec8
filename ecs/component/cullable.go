package component

// Cullable entities are destroyed once their transform X drops below MinX.
type Cullable struct {
	MinX float64
}

var CullableComponent = NewComponent[Cullable]()
