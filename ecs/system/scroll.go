package system

import (
	"math"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if gameOver(w) {
		return
	}
	ecs.ForEach(w, component.ScrollLayerComponent.Kind(), func(e ecs.Entity, layer *component.ScrollLayer) {
		layer.Offset += layer.Speed
		if layer.TileWidth > 0 {
			layer.Offset = math.Mod(layer.Offset, layer.TileWidth)
		}
	})
}
