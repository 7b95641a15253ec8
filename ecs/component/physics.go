package component

import "github.com/jakecoffman/cp"

// CollisionKind selects the cp collision type of a body's shape.
type CollisionKind int

const (
	CollisionSolid CollisionKind = iota
	CollisionPlayer
	CollisionHazard
	CollisionMineral
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// The collider is a box of Width x Height whose center sits at
// (OffsetX, OffsetY) from the entity transform.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Width     float64
	Height    float64
	OffsetX   float64
	OffsetY   float64
	Mass      float64
	Friction  float64
	Static    bool
	Kinematic bool
	Sensor    bool
	VelocityX float64
	VelocityY float64
	Collision CollisionKind

	// Dirty asks the physics system to rebuild the shape from the
	// collider fields on its next sync.
	Dirty bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
