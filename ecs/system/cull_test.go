package system

import (
	"testing"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/entity"
)

func TestCullSystem(t *testing.T) {
	spec := loadSpec(t)
	w, _ := newRunWorld(t, spec)
	cull := NewCullSystem()

	gone, err := entity.NewSpikeAt(w, spec, -21)
	if err != nil {
		t.Fatalf("spike: %v", err)
	}
	edge, err := entity.NewSpikeAt(w, spec, -20)
	if err != nil {
		t.Fatalf("spike: %v", err)
	}

	cull.Update(w)
	if w.IsAlive(gone) || !w.IsAlive(edge) || cull.Culled() != 1 {
		t.Fatalf("expected only the spike past the edge culled")
	}

	tr, _ := ecs.Get(w, edge, component.TransformComponent.Kind())
	tr.X = -20.5
	mustRunState(t, w).GameOver = true
	cull.Update(w)
	if !w.IsAlive(edge) {
		t.Fatalf("culling should pause after game over")
	}
}
