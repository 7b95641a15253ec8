package entity

import (
	"fmt"
	"strconv"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/prefabs"
)

func NewRunState(w *ecs.World, runID string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RunStateComponent.Kind(), &component.RunState{RunID: runID}); err != nil {
		return 0, fmt.Errorf("run state: add state: %w", err)
	}
	return e, nil
}

// NewScoreLabel creates a visible label reading "0".
func NewScoreLabel(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	label := &component.ScoreLabel{
		Text:    strconv.Itoa(0),
		Visible: true,
		Scale:   1,
	}
	if spec != nil {
		label.X = spec.HUD.ScoreX
		label.Y = spec.HUD.ScoreY
		label.PulseFrames = prefabs.PeriodTicks(spec.HUD.PulseMS, spec.Screen.TPS)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreLabelComponent.Kind(), label); err != nil {
		return 0, fmt.Errorf("score label: add label: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerHUD}); err != nil {
		return 0, fmt.Errorf("score label: add render layer: %w", err)
	}
	return e, nil
}

func NewGameOverText(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	text := &component.GameOverText{}
	if spec != nil {
		text.Title = spec.HUD.GameOverTitle
		text.Prompt = spec.HUD.GameOverPrompt
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameOverTextComponent.Kind(), text); err != nil {
		return 0, fmt.Errorf("game over text: add text: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerHUD + 1}); err != nil {
		return 0, fmt.Errorf("game over text: add render layer: %w", err)
	}
	return e, nil
}

// Spawn timer groups.
const (
	GroupObstacle = "obstacle"
	GroupMineral  = "mineral"
)

// NewSpawnTimers creates the obstacle and mineral clocks.
func NewSpawnTimers(w *ecs.World, spec *prefabs.GameSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("spawn timer: nil game spec")
	}
	tps := spec.Screen.TPS
	timers := []component.SpawnTimer{
		{Group: GroupObstacle, PeriodTicks: prefabs.PeriodTicks(spec.Spawn.Obstacle.PeriodMS, tps)},
		{Group: GroupMineral, PeriodTicks: prefabs.PeriodTicks(spec.Spawn.Mineral.PeriodMS, tps)},
	}
	out := make([]ecs.Entity, 0, len(timers))
	for i := range timers {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.SpawnTimerComponent.Kind(), &timers[i]); err != nil {
			return nil, fmt.Errorf("spawn timer %s: add timer: %w", timers[i].Group, err)
		}
		out = append(out, e)
	}
	return out, nil
}
