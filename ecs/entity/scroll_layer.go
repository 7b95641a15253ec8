package entity

import (
	"fmt"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

// NewScrollLayers creates one tiled strip per configured layer.
func NewScrollLayers(w *ecs.World, spec *prefabs.GameSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("scroll layer: nil game spec")
	}
	out := make([]ecs.Entity, 0, len(spec.Layers))
	for _, ls := range spec.Layers {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ScrollLayerComponent.Kind(), &component.ScrollLayer{
			Speed:     ls.Speed,
			TileWidth: ls.TileWidth,
			Y:         ls.Y,
			Height:    ls.Height,
		}); err != nil {
			return nil, fmt.Errorf("scroll layer %s: add layer: %w", ls.Name, err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Image: render.GetImage(ls.Image),
			Key:   ls.Image,
		}); err != nil {
			return nil, fmt.Errorf("scroll layer %s: add sprite: %w", ls.Name, err)
		}
		index := ls.Index
		if index < layerBackground {
			index = layerBackground
		}
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index}); err != nil {
			return nil, fmt.Errorf("scroll layer %s: add render layer: %w", ls.Name, err)
		}
		out = append(out, e)
	}
	return out, nil
}
