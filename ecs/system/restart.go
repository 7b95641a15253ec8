package system

import (
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

// RestartSystem consumes the armed restart listener. Only a pointer press
// on a tick after the game-over tick counts, and only once.
type RestartSystem struct{}

func NewRestartSystem() *RestartSystem {
	return &RestartSystem{}
}

func (r *RestartSystem) Update(w *ecs.World) {
	rs, ok := runState(w)
	if !ok || !rs.GameOver || !rs.RestartArmed || rs.Tick <= rs.GameOverTick {
		return
	}

	pressed := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if input.PointerPressed {
			pressed = true
		}
	})
	if !pressed {
		return
	}

	rs.RestartArmed = false
	rs.PhysicsPaused = false
	rs.RestartRequested = true
}
