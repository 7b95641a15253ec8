package entity

import (
	"fmt"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

func NewMineralAt(w *ecs.World, spec *prefabs.GameSpec, kind component.MineralKind, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("mineral: nil game spec")
	}
	ms, ok := spec.Minerals[kind.String()]
	if !ok {
		return 0, fmt.Errorf("mineral: no prefab for %s", kind)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MineralComponent.Kind(), &component.Mineral{Kind: kind}); err != nil {
		return 0, fmt.Errorf("mineral: add mineral: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("mineral: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   render.GetImage(ms.Image),
		Key:     ms.Image,
		OriginX: ms.Size / 2,
		OriginY: ms.Size / 2,
	}); err != nil {
		return 0, fmt.Errorf("mineral: add sprite: %w", err)
	}
	if err := addMover(w, e, spec, spawnBody(ms.Size, ms.Size, 0, 0, component.CollisionMineral, spec.Spawn.VelocityX), layerMineral); err != nil {
		return 0, fmt.Errorf("mineral: %w", err)
	}
	return e, nil
}
