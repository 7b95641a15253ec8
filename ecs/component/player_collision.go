package component

// PlayerCollision stores per-player collision state derived from physics contacts.
type PlayerCollision struct {
	Grounded bool
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
