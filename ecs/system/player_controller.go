package system

import (
	"math"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

// PlayerControllerSystem turns input and the grounded flag into the run,
// duck or jump pose. The collider always matches the pose.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || gameOver(w) {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			continue
		}
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil {
			continue
		}
		contacts, _ := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

		grounded := contacts != nil && contacts.Grounded

		jump := input.JumpPressed
		if swipeUp := trackSwipe(player, input); swipeUp {
			jump = true
		}

		if jump && grounded {
			vel := bodyComp.Body.Velocity()
			bodyComp.Body.SetVelocity(vel.X, -player.JumpSpeed)
			setPose(player, anim, bodyComp, component.PoseRun)
			player.SwipeDown = false
			// Airborne from here on; the duck branch below must not apply.
			grounded = false
			contacts.Grounded = false
		}

		if (input.DuckHeld || player.SwipeDown) && grounded {
			if player.Pose != component.PoseDuck {
				setPose(player, anim, bodyComp, component.PoseDuck)
			}
			continue
		}

		if player.Pose != component.PoseRun {
			setPose(player, anim, bodyComp, component.PoseRun)
		}
		if player.SwipeDown && !grounded {
			player.SwipeDown = false
		}
	}
}

// trackSwipe records pointer presses and resolves releases. A release
// whose vertical travel is under the threshold is ignored. Upward travel is
// reported as a jump request; downward travel latches SwipeDown.
func trackSwipe(player *component.Player, input *component.Input) bool {
	if input.PointerPressed {
		player.SwipeActive = true
		player.SwipeStartY = input.PressY
	}
	if !input.PointerReleased || !player.SwipeActive {
		return false
	}
	player.SwipeActive = false

	dy := input.ReleaseY - player.SwipeStartY
	if math.Abs(dy) < player.SwipeThreshold {
		return false
	}
	if dy < 0 {
		return true
	}
	player.SwipeDown = true
	return false
}

func setPose(player *component.Player, anim *component.Animation, body *component.PhysicsBody, pose component.PlayerPose) {
	player.Pose = pose
	player.HitboxFor(pose).ApplyTo(body)

	clip := player.RunAnim
	if pose == component.PoseDuck {
		clip = player.DuckAnim
	}
	if anim != nil && anim.Current != clip {
		anim.Play(clip)
	}
}
