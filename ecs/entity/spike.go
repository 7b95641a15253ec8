package entity

import (
	"fmt"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

// NewSpikeAt creates a spike resting on the ground line at x.
func NewSpikeAt(w *ecs.World, spec *prefabs.GameSpec, x float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("spike: nil game spec")
	}
	ss := spec.Spike
	size := ss.Size * ss.Scale

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Kind: component.ObstacleSpike}); err != nil {
		return 0, fmt.Errorf("spike: add obstacle: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      spec.World.GroundY - ss.AboveGround,
		ScaleX: ss.Scale,
		ScaleY: ss.Scale,
	}); err != nil {
		return 0, fmt.Errorf("spike: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   render.GetImage(ss.Image),
		Key:     ss.Image,
		OriginX: ss.Size / 2,
		OriginY: ss.Size / 2,
	}); err != nil {
		return 0, fmt.Errorf("spike: add sprite: %w", err)
	}
	if err := addMover(w, e, spec, spawnBody(size, size, 0, 0, component.CollisionHazard, spec.Spawn.VelocityX), layerObstacle); err != nil {
		return 0, fmt.Errorf("spike: %w", err)
	}
	return e, nil
}

// spawnBody is a gravity-free sensor moving left at a constant speed.
func spawnBody(w, h, ox, oy float64, kind component.CollisionKind, vx float64) *component.PhysicsBody {
	return &component.PhysicsBody{
		Width:     w,
		Height:    h,
		OffsetX:   ox,
		OffsetY:   oy,
		Kinematic: true,
		Sensor:    true,
		VelocityX: vx,
		Collision: kind,
	}
}

// addMover attaches the components every spawned entity shares.
func addMover(w *ecs.World, e ecs.Entity, spec *prefabs.GameSpec, body *component.PhysicsBody, layer int) error {
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.CullableComponent.Kind(), &component.Cullable{MinX: spec.Spawn.CullX}); err != nil {
		return fmt.Errorf("add cullable: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}
