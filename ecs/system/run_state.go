package system

import (
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

// runState returns the singleton run state, if the world has one.
func runState(w *ecs.World) (*component.RunState, bool) {
	e, ok := w.First(component.RunStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RunStateComponent.Kind())
}

// gameOver reports whether gameplay systems should stand still.
func gameOver(w *ecs.World) bool {
	rs, ok := runState(w)
	return ok && rs.GameOver
}
