package system

import (
	"image/color"
	"log"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/entity"
	"github.com/milk9111/minerunner/prefabs"
)

// CollisionSystem applies the run rules to the overlaps physics reported:
// a hazard ends the run, a mineral scores and disappears.
type CollisionSystem struct {
	spec *prefabs.GameSpec
	sink ScoreSink
	tint color.RGBA
}

func NewCollisionSystem(spec *prefabs.GameSpec, sink ScoreSink) *CollisionSystem {
	if sink == nil {
		sink = NopScoreSink{}
	}
	tint := color.RGBA{R: 0xff, A: 0xff}
	if spec != nil && spec.Player.HazardTint != nil {
		tint = spec.Player.HazardTint.RGBA8()
	}
	return &CollisionSystem{spec: spec, sink: sink, tint: tint}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Take(ecs.EventTypeCollision) {
		hit, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		switch hit.Kind {
		case ecs.CollisionEventHitHazard:
			c.HitHazard(w, hit.Player)
		case ecs.CollisionEventCollect:
			c.Collect(w, hit.Other)
		}
	}
}

// HitHazard ends the run. Calls after the first are no-ops until restart.
func (c *CollisionSystem) HitHazard(w *ecs.World, player ecs.Entity) {
	rs, ok := runState(w)
	if !ok || rs.GameOver {
		return
	}
	rs.GameOver = true
	rs.GameOverTick = rs.Tick
	rs.PhysicsPaused = true

	if w.IsAlive(player) {
		if err := ecs.Add(w, player, component.TintComponent.Kind(), &component.Tint{Color: c.tint}); err != nil {
			log.Printf("collision: tint player: %v", err)
		}
		if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
			anim.Playing = false
		}
	}

	if v, ok := c.sink.(ScoreVisibility); ok {
		v.SetScoreVisible(false)
	}

	if _, exists := w.First(component.GameOverTextComponent.Kind()); !exists {
		if _, err := entity.NewGameOverText(w, c.spec); err != nil {
			log.Printf("collision: game over text: %v", err)
		}
	}

	rs.RestartArmed = true
	log.Printf("scene: run %s over at tick %d, score=%d", rs.RunID, rs.Tick, rs.Score)
}

// Collect scores a mineral and destroys it. Ignored once the run is over.
func (c *CollisionSystem) Collect(w *ecs.World, mineral ecs.Entity) {
	rs, ok := runState(w)
	if !ok || rs.GameOver {
		return
	}
	m, ok := ecs.Get(w, mineral, component.MineralComponent.Kind())
	if !ok {
		return
	}
	points := m.Kind.Points()
	if !w.DestroyEntity(mineral) {
		return
	}
	rs.Score += points

	c.sink.DisplayScore(rs.Score)
	if p, ok := c.sink.(ScorePulser); ok {
		p.PulseScore()
	}
}
