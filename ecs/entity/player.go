package entity

import (
	"fmt"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

func NewPlayer(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil game spec")
	}
	ps := spec.Player

	anim, err := render.BuildAnimation(ps.Animation)
	if err != nil {
		return 0, fmt.Errorf("player: build animation: %w", err)
	}
	anim.Play("run")
	def := anim.Defs[anim.Current]

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      ps.X,
		Y:      ps.Y,
		ScaleX: ps.Scale,
		ScaleY: ps.Scale,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     def.Sheet,
		Key:       def.SheetKey,
		UseSource: true,
		OriginX:   float64(def.FrameW) / 2,
		OriginY:   float64(def.FrameH) / 2,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &anim); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	player := &component.Player{
		JumpSpeed:      ps.JumpSpeed,
		SwipeThreshold: ps.SwipeThreshold,
		RunHitbox:      hitbox(ps.RunHitbox),
		DuckHitbox:     hitbox(ps.DuckHitbox),
		RunAnim:        "run",
		DuckAnim:       "down",
		Pose:           component.PoseRun,
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	body := &component.PhysicsBody{Mass: ps.Mass, Collision: component.CollisionPlayer}
	player.RunHitbox.ApplyTo(body)
	body.Dirty = false
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add collision: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerPlayer}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	return e, nil
}

func hitbox(h prefabs.HitboxSpec) component.Hitbox {
	return component.Hitbox{Width: h.Width, Height: h.Height, OffsetX: h.OffsetX, OffsetY: h.OffsetY}
}
