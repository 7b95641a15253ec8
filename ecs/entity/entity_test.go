package entity

import (
	"testing"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
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

func TestNewPlayer(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()

	e, err := NewPlayer(w, spec)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 50 || tr.Y != 152 || tr.ScaleX != 1.5 {
		t.Fatalf("unexpected transform %+v", tr)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatalf("expected physics body")
	}
	if got := component.HitboxOf(body); got != (component.Hitbox{Width: 15, Height: 24}) {
		t.Fatalf("expected run hitbox, got %+v", got)
	}
	if body.Dirty || body.Collision != component.CollisionPlayer {
		t.Fatalf("unexpected body flags %+v", body)
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || anim.Current != "run" || !anim.Playing {
		t.Fatalf("expected run animation, got %+v", anim)
	}
	for name, has := range map[string]bool{
		"tag":       ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"player":    ecs.Has(w, e, component.PlayerComponent.Kind()),
		"collision": ecs.Has(w, e, component.PlayerCollisionComponent.Kind()),
		"input":     ecs.Has(w, e, component.InputComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player missing %s", name)
		}
	}
}

func TestSpawnedEntities(t *testing.T) {
	spec := loadSpec(t)
	x := float64(spec.Screen.Width) + spec.Spawn.XMargin

	cases := []struct {
		name   string
		build  func(w *ecs.World) (ecs.Entity, error)
		y      float64
		hitbox component.Hitbox
		kind   component.CollisionKind
	}{
		{
			name:   "spike",
			build:  func(w *ecs.World) (ecs.Entity, error) { return NewSpikeAt(w, spec, x) },
			y:      158,
			hitbox: component.Hitbox{Width: 12, Height: 12},
			kind:   component.CollisionHazard,
		},
		{
			name:   "bat",
			build:  func(w *ecs.World) (ecs.Entity, error) { return NewBatAt(w, spec, x, 136) },
			y:      136,
			hitbox: component.Hitbox{Width: 18, Height: 9, OffsetY: 3},
			kind:   component.CollisionHazard,
		},
		{
			name:   "gold",
			build:  func(w *ecs.World) (ecs.Entity, error) { return NewMineralAt(w, spec, component.MineralGold, x, 120) },
			y:      120,
			hitbox: component.Hitbox{Width: 16, Height: 16},
			kind:   component.CollisionMineral,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := c.build(w)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if tr.X != 330 || tr.Y != c.y {
				t.Fatalf("unexpected position (%v, %v)", tr.X, tr.Y)
			}
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if component.HitboxOf(body) != c.hitbox {
				t.Fatalf("unexpected hitbox %+v", component.HitboxOf(body))
			}
			if !body.Kinematic || !body.Sensor || body.VelocityX != -100 || body.Collision != c.kind {
				t.Fatalf("unexpected body %+v", body)
			}
			cull, ok := ecs.Get(w, e, component.CullableComponent.Kind())
			if !ok || cull.MinX != -20 {
				t.Fatalf("expected cull threshold -20, got %+v", cull)
			}
		})
	}
}

func TestBatIsMirroredAndFlying(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	e, err := NewBatAt(w, spec, 10, 140)
	if err != nil {
		t.Fatal(err)
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.FlipX {
		t.Fatalf("expected mirrored bat")
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != "fly" || !anim.Playing || !anim.Defs["fly"].Loop {
		t.Fatalf("expected looping fly animation, got %+v", anim)
	}
}

func TestNewMineralUnknownKind(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	if _, err := NewMineralAt(w, spec, component.MineralKind(9), 0, 0); err == nil {
		t.Fatalf("expected error for unknown mineral kind")
	}
}

func TestHUDAndTimers(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()

	e, err := NewScoreLabel(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	label, _ := ecs.Get(w, e, component.ScoreLabelComponent.Kind())
	if label.Text != "0" || !label.Visible || label.PulseFrames != 9 {
		t.Fatalf("unexpected label %+v", label)
	}

	timers, err := NewSpawnTimers(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{GroupObstacle: 72, GroupMineral: 108}
	for _, te := range timers {
		timer, _ := ecs.Get(w, te, component.SpawnTimerComponent.Kind())
		if want[timer.Group] != timer.PeriodTicks {
			t.Fatalf("unexpected period for %s: %d", timer.Group, timer.PeriodTicks)
		}
	}

	ge, err := NewGameOverText(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	text, _ := ecs.Get(w, ge, component.GameOverTextComponent.Kind())
	if text.Title != "¡Perdiste!" || text.Prompt != "Toca para volver a jugar" {
		t.Fatalf("unexpected text %+v", text)
	}

	layers, err := NewScrollLayers(w, spec)
	if err != nil || len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d err=%v", len(layers), err)
	}
	ground, err := NewGround(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	gb, _ := ecs.Get(w, ground, component.PhysicsBodyComponent.Kind())
	gt, _ := ecs.Get(w, ground, component.TransformComponent.Kind())
	if !gb.Static || gt.Y-gb.Height/2 != 164 {
		t.Fatalf("ground top should sit at 164, got %v", gt.Y-gb.Height/2)
	}
}
