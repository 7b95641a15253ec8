// Package scene owns one run of the game: the ECS world, the system order
// and the restart cycle. Hosts drive it by calling Tick once per frame.
package scene

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/entity"
	"github.com/milk9111/minerunner/ecs/system"
	"github.com/milk9111/minerunner/prefabs"
)

type Option func(*Scene)

// WithInput sets where each tick's input comes from.
func WithInput(source system.InputSource) Option {
	return func(s *Scene) { s.input = source }
}

// WithSeed fixes the spawn generator seed. Each restart derives a new seed
// from it.
func WithSeed(seed uint64) Option {
	return func(s *Scene) { s.seed = seed }
}

// WithScoreSink adds a sink that sees every score change alongside the
// on-screen label.
func WithScoreSink(sink system.ScoreSink) Option {
	return func(s *Scene) { s.extraSink = sink }
}

func WithChooser(chooser system.Chooser) Option {
	return func(s *Scene) { s.chooser = chooser }
}

type Scene struct {
	spec      *prefabs.GameSpec
	input     system.InputSource
	seed      uint64
	chooser   system.Chooser
	extraSink system.ScoreSink

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	spawner   *system.SpawnSystem

	restarts int
}

func New(spec *prefabs.GameSpec, opts ...Option) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil game spec")
	}
	s := &Scene{spec: spec, seed: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.chooser == nil {
		s.chooser = defaultChooser(spec)
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// defaultChooser compiles the configured spawn script, falling back to a
// uniform pick when there is none or it does not compile.
func defaultChooser(spec *prefabs.GameSpec) system.Chooser {
	if spec.Spawn.Script == "" {
		return system.UniformChooser{}
	}
	src, err := prefabs.LoadScript(spec.Spawn.Script)
	if err != nil {
		log.Printf("scene: spawn script %s: %v", spec.Spawn.Script, err)
		return system.UniformChooser{}
	}
	chooser, err := system.NewScriptChooser(src)
	if err != nil {
		log.Printf("scene: spawn script %s: %v", spec.Spawn.Script, err)
		return system.UniformChooser{}
	}
	return chooser
}

// Init builds a fresh world: layers, ground, player, timers, run state and
// a score label reading "0".
func (s *Scene) Init() error {
	w := ecs.NewWorld()
	runID := uuid.NewString()

	if _, err := entity.NewRunState(w, runID); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.NewScrollLayers(w, s.spec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.NewGround(w, s.spec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.NewPlayer(w, s.spec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.NewSpawnTimers(w, s.spec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.NewScoreLabel(w, s.spec); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	var sink system.ScoreSink = system.NewLabelSink(w, s.spec)
	if s.extraSink != nil {
		sink = system.MultiSink{sink, s.extraSink}
		sink.DisplayScore(0)
		if v, ok := sink.(system.ScoreVisibility); ok {
			v.SetScoreVisible(true)
		}
	}

	s.world = w
	s.physics = system.NewPhysicsSystem(s.spec.World.Gravity, s.spec.Screen.TPS)
	s.spawner = system.NewSpawnSystem(s.spec, s.seed+uint64(s.restarts), s.chooser)
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(s.input),
		system.NewRestartSystem(),
		s.spawner,
		system.NewScrollSystem(),
		system.NewPlayerControllerSystem(),
		system.NewCullSystem(),
		s.physics,
		system.NewCollisionSystem(s.spec, sink),
		system.NewAnimationSystem(s.spec.Screen.TPS),
		system.NewScorePulseSystem(s.spec.HUD.PulseScale),
	)

	log.Printf("scene: run %s started (restarts=%d)", runID, s.restarts)
	return nil
}

// Tick advances the run by one logical frame.
func (s *Scene) Tick() error {
	if s == nil || s.world == nil {
		return fmt.Errorf("scene: not initialised")
	}
	rs := s.RunState()
	if rs == nil {
		return fmt.Errorf("scene: world has no run state")
	}
	rs.Tick++

	s.scheduler.Update(s.world)

	if rs.RestartRequested {
		return s.Restart()
	}
	return nil
}

// Restart discards the current run and starts a new one.
func (s *Scene) Restart() error {
	s.restarts++
	if err := s.Init(); err != nil {
		return err
	}
	if rs := s.RunState(); rs != nil {
		rs.Restarts = s.restarts
	}
	return nil
}

// SetSpec swaps the game spec and restarts the run with it.
func (s *Scene) SetSpec(spec *prefabs.GameSpec) error {
	if spec == nil {
		return fmt.Errorf("scene: nil game spec")
	}
	s.spec = spec
	s.chooser = defaultChooser(spec)
	return s.Restart()
}

func (s *Scene) Spec() *prefabs.GameSpec {
	return s.spec
}

func (s *Scene) World() *ecs.World {
	return s.world
}

func (s *Scene) Physics() *system.PhysicsSystem {
	return s.physics
}

func (s *Scene) Spawner() *system.SpawnSystem {
	return s.spawner
}

func (s *Scene) RunState() *component.RunState {
	if s == nil || s.world == nil {
		return nil
	}
	e, ok := s.world.First(component.RunStateComponent.Kind())
	if !ok {
		return nil
	}
	rs, _ := ecs.Get(s.world, e, component.RunStateComponent.Kind())
	return rs
}

// Player returns the current run's player entity.
func (s *Scene) Player() (ecs.Entity, bool) {
	if s == nil || s.world == nil {
		return 0, false
	}
	return s.world.First(component.PlayerTagComponent.Kind())
}
