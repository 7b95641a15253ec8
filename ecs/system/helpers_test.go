package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/entity"
	"github.com/milk9111/minerunner/prefabs"
)

func loadSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	return spec
}

// newRunWorld builds a world with a run state, the player and the ground.
func newRunWorld(t *testing.T, spec *prefabs.GameSpec) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewRunState(w, "test-run"); err != nil {
		t.Fatalf("run state: %v", err)
	}
	player, err := entity.NewPlayer(w, spec)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if _, err := entity.NewGround(w, spec); err != nil {
		t.Fatalf("ground: %v", err)
	}
	return w, player
}

func mustRunState(t *testing.T, w *ecs.World) *component.RunState {
	t.Helper()
	rs, ok := runState(w)
	if !ok {
		t.Fatalf("world has no run state")
	}
	return rs
}

// attachBody gives the player a free-standing body so the controller can
// act without a physics space.
func attachBody(t *testing.T, w *ecs.World, player ecs.Entity, grounded bool) *component.PhysicsBody {
	t.Helper()
	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatalf("player has no physics body")
	}
	body.Body = cp.NewBody(1, cp.INFINITY)
	contacts, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
	if !ok {
		t.Fatalf("player has no collision state")
	}
	contacts.Grounded = grounded
	return body
}

func setInput(t *testing.T, w *ecs.World, player ecs.Entity, in component.Input) {
	t.Helper()
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("player has no input")
	}
	*input = in
}

func countOf[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	return len(w.Query(kind))
}
