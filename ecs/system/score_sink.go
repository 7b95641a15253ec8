package system

import (
	"strconv"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/entity"
	"github.com/milk9111/minerunner/prefabs"
)

// ScoreSink receives every score change.
type ScoreSink interface {
	DisplayScore(score int)
}

// ScoreVisibility is an optional ScoreSink capability.
type ScoreVisibility interface {
	SetScoreVisible(visible bool)
}

// ScorePulser is an optional ScoreSink capability.
type ScorePulser interface {
	PulseScore()
}

type NopScoreSink struct{}

func (NopScoreSink) DisplayScore(int) {}

// LabelSink writes the score into the world's ScoreLabel, creating the
// label when it is missing.
type LabelSink struct {
	w    *ecs.World
	spec *prefabs.GameSpec
}

func NewLabelSink(w *ecs.World, spec *prefabs.GameSpec) *LabelSink {
	return &LabelSink{w: w, spec: spec}
}

func (s *LabelSink) label() *component.ScoreLabel {
	if s == nil || s.w == nil {
		return nil
	}
	e, ok := s.w.First(component.ScoreLabelComponent.Kind())
	if !ok {
		var err error
		if e, err = entity.NewScoreLabel(s.w, s.spec); err != nil {
			return nil
		}
	}
	label, _ := ecs.Get(s.w, e, component.ScoreLabelComponent.Kind())
	return label
}

func (s *LabelSink) DisplayScore(score int) {
	if label := s.label(); label != nil {
		label.Score = score
		label.Text = strconv.Itoa(score)
	}
}

func (s *LabelSink) SetScoreVisible(visible bool) {
	if label := s.label(); label != nil {
		label.Visible = visible
	}
}

func (s *LabelSink) PulseScore() {
	if label := s.label(); label != nil {
		label.Pulsing = true
		label.PulseElapsed = 0
		label.Scale = 1
	}
}

// MultiSink fans score updates out to several sinks, forwarding optional
// capabilities to the sinks that have them.
type MultiSink []ScoreSink

func (m MultiSink) DisplayScore(score int) {
	for _, s := range m {
		if s != nil {
			s.DisplayScore(score)
		}
	}
}

func (m MultiSink) SetScoreVisible(visible bool) {
	for _, s := range m {
		if v, ok := s.(ScoreVisibility); ok {
			v.SetScoreVisible(visible)
		}
	}
}

func (m MultiSink) PulseScore() {
	for _, s := range m {
		if p, ok := s.(ScorePulser); ok {
			p.PulseScore()
		}
	}
}
