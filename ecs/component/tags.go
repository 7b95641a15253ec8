package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
