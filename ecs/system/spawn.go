package system

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/entity"
	"github.com/milk9111/minerunner/prefabs"
)

// Chooser picks which option a spawn group produces. roll is a uniform
// index into options drawn from the run's generator.
type Chooser interface {
	Choose(group string, options []string, roll int) (string, error)
}

// UniformChooser returns options[roll].
type UniformChooser struct{}

func (UniformChooser) Choose(group string, options []string, roll int) (string, error) {
	if roll < 0 || roll >= len(options) {
		return "", fmt.Errorf("spawn: roll %d out of range for %s", roll, group)
	}
	return options[roll], nil
}

// SpawnSystem fires the obstacle and mineral clocks and creates entities
// just past the right edge of the screen.
type SpawnSystem struct {
	spec    *prefabs.GameSpec
	rng     *rand.Rand
	chooser Chooser
	spawned map[string]int
}

func NewSpawnSystem(spec *prefabs.GameSpec, seed uint64, chooser Chooser) *SpawnSystem {
	if chooser == nil {
		chooser = UniformChooser{}
	}
	return &SpawnSystem{
		spec:    spec,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		chooser: chooser,
		spawned: make(map[string]int),
	}
}

// Spawned returns how many entities of a group this system has created.
func (s *SpawnSystem) Spawned(group string) int {
	if s == nil {
		return 0
	}
	return s.spawned[group]
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || s.spec == nil || gameOver(w) {
		return
	}
	ecs.ForEach(w, component.SpawnTimerComponent.Kind(), func(e ecs.Entity, timer *component.SpawnTimer) {
		if !timer.Advance() {
			return
		}
		if err := s.spawn(w, timer.Group); err != nil {
			log.Printf("spawn: %s: %v", timer.Group, err)
		}
	})
}

func (s *SpawnSystem) spawnX() float64 {
	return float64(s.spec.Screen.Width) + s.spec.Spawn.XMargin
}

func (s *SpawnSystem) spawn(w *ecs.World, group string) error {
	switch group {
	case entity.GroupObstacle:
		key := s.choose(group, s.spec.Spawn.Obstacle.Options)
		kind, err := component.ParseObstacleKind(key)
		if err != nil {
			return err
		}
		switch kind {
		case component.ObstacleSpike:
			_, err = entity.NewSpikeAt(w, s.spec, s.spawnX())
		case component.ObstacleBat:
			y := s.bandY(s.spec.Bat.MinAboveGround, s.spec.Bat.MaxAboveGround)
			_, err = entity.NewBatAt(w, s.spec, s.spawnX(), y)
		}
		if err != nil {
			return err
		}
	case entity.GroupMineral:
		key := s.choose(group, s.spec.Spawn.Mineral.Options)
		kind, err := component.ParseMineralKind(key)
		if err != nil {
			return err
		}
		band := s.spec.Spawn.Mineral
		y := s.bandY(band.MinAboveGround, band.MaxAboveGround)
		if _, err := entity.NewMineralAt(w, s.spec, kind, s.spawnX(), y); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown spawn group")
	}
	s.spawned[group]++
	return nil
}

// choose draws a roll and asks the chooser for a key. Keys outside the
// option list fall back to the uniform pick.
func (s *SpawnSystem) choose(group string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	roll := s.rng.IntN(len(options))
	key, err := s.chooser.Choose(group, options, roll)
	if err != nil {
		log.Printf("spawn: %s chooser: %v", group, err)
		return options[roll]
	}
	if !slices.Contains(options, key) {
		log.Printf("spawn: %s chooser returned %q, using %q", group, key, options[roll])
		return options[roll]
	}
	return key
}

// bandY returns a height between min and max pixels above the ground line,
// both inclusive.
func (s *SpawnSystem) bandY(minAbove, maxAbove int) float64 {
	if maxAbove < minAbove {
		minAbove, maxAbove = maxAbove, minAbove
	}
	offset := maxAbove - s.rng.IntN(maxAbove-minAbove+1)
	return s.spec.World.GroundY - float64(offset)
}
