package system

import (
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

// ScorePulseSystem animates the score label 1 -> peak -> 1 with an ease-out
// curve over the label's pulse duration.
type ScorePulseSystem struct {
	peak float64
}

func NewScorePulseSystem(peak float64) *ScorePulseSystem {
	if peak <= 0 {
		peak = 1.2
	}
	return &ScorePulseSystem{peak: peak}
}

func (s *ScorePulseSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ScoreLabelComponent.Kind(), func(e ecs.Entity, label *component.ScoreLabel) {
		if !label.Pulsing {
			return
		}
		label.PulseElapsed++
		if label.PulseFrames <= 0 || label.PulseElapsed >= label.PulseFrames {
			label.Pulsing = false
			label.PulseElapsed = 0
			label.Scale = 1
			return
		}
		label.Scale = PulseScale(float64(label.PulseElapsed)/float64(label.PulseFrames), s.peak)
	})
}

// PulseScale maps pulse progress t in [0,1] to a label scale.
func PulseScale(t, peak float64) float64 {
	if t <= 0 || t >= 1 {
		return 1
	}
	p := 1 - (1-t)*(1-t)
	if p < 0.5 {
		return 1 + (peak-1)*2*p
	}
	return peak - (peak-1)*2*(p-0.5)
}
