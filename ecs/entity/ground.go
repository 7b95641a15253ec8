package entity

import (
	"fmt"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/prefabs"
)

// NewGround creates the invisible static collider the player runs on. Its
// top edge is the ground line.
func NewGround(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("ground: nil game spec")
	}
	width := float64(spec.Screen.Width)
	height := spec.World.GroundHeight

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("ground: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      width / 2,
		Y:      spec.World.GroundY + height/2,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     width,
		Height:    height,
		Friction:  0,
		Static:    true,
		Collision: component.CollisionSolid,
	}); err != nil {
		return 0, fmt.Errorf("ground: add physics body: %w", err)
	}
	return e, nil
}
