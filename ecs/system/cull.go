package system

import (
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

// CullSystem destroys spawned entities once they scroll past the left edge.
type CullSystem struct {
	culled int
}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Culled returns how many entities this system has destroyed.
func (c *CullSystem) Culled() int {
	if c == nil {
		return 0
	}
	return c.culled
}

func (c *CullSystem) Update(w *ecs.World) {
	if gameOver(w) {
		return
	}
	ecs.ForEach2(w, component.CullableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cull *component.Cullable, t *component.Transform) {
		if t.X < cull.MinX && w.DestroyEntity(e) {
			c.culled++
		}
	})
}
