package entity

import (
	"fmt"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

// NewBatAt creates a mirrored flying bat at (x, y).
func NewBatAt(w *ecs.World, spec *prefabs.GameSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("bat: nil game spec")
	}
	bs := spec.Bat

	anim, err := render.BuildAnimation(bs.Animation)
	if err != nil {
		return 0, fmt.Errorf("bat: build animation: %w", err)
	}
	anim.Play("fly")
	def := anim.Defs[anim.Current]

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Kind: component.ObstacleBat}); err != nil {
		return 0, fmt.Errorf("bat: add obstacle: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: bs.Scale,
		ScaleY: bs.Scale,
	}); err != nil {
		return 0, fmt.Errorf("bat: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     def.Sheet,
		Key:       def.SheetKey,
		UseSource: true,
		OriginX:   float64(def.FrameW) / 2,
		OriginY:   float64(def.FrameH) / 2,
		FlipX:     bs.FlipX,
	}); err != nil {
		return 0, fmt.Errorf("bat: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &anim); err != nil {
		return 0, fmt.Errorf("bat: add animation: %w", err)
	}
	hb := bs.Hitbox
	if err := addMover(w, e, spec, spawnBody(hb.Width, hb.Height, hb.OffsetX, hb.OffsetY, component.CollisionHazard, spec.Spawn.VelocityX), layerObstacle); err != nil {
		return 0, fmt.Errorf("bat: %w", err)
	}
	return e, nil
}
