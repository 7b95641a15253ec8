package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameFile is the prefab that configures a run.
const GameFile = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Name     string                 `yaml:"name"`
	Screen   ScreenSpec             `yaml:"screen"`
	World    WorldSpec              `yaml:"world"`
	Layers   []LayerSpec            `yaml:"layers"`
	Player   PlayerSpec             `yaml:"player"`
	Spawn    SpawnSpec              `yaml:"spawn"`
	Spike    SpikeSpec              `yaml:"spike"`
	Bat      BatSpec                `yaml:"bat"`
	Minerals map[string]MineralSpec `yaml:"minerals"`
	HUD      HUDSpec                `yaml:"hud"`
}

// LoadGameSpec reads game.yaml, fills defaults and validates the result.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseGameSpec decodes a game spec from raw YAML.
func ParseGameSpec(data []byte) (*GameSpec, error) {
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", GameFile, err)
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

type WorldSpec struct {
	Gravity      float64 `yaml:"gravity"`
	GroundY      float64 `yaml:"ground_y"`
	GroundHeight float64 `yaml:"ground_height"`
}

type LayerSpec struct {
	Name      string  `yaml:"name"`
	Image     string  `yaml:"image"`
	Speed     float64 `yaml:"speed"`
	Y         float64 `yaml:"y"`
	Height    float64 `yaml:"height"`
	TileWidth float64 `yaml:"tile_width"`
	Index     int     `yaml:"index"`
}

type PlayerSpec struct {
	X              float64       `yaml:"x"`
	Y              float64       `yaml:"y"`
	Scale          float64       `yaml:"scale"`
	Mass           float64       `yaml:"mass"`
	JumpSpeed      float64       `yaml:"jump_speed"`
	SwipeThreshold float64       `yaml:"swipe_threshold"`
	RunHitbox      HitboxSpec    `yaml:"run_hitbox"`
	DuckHitbox     HitboxSpec    `yaml:"duck_hitbox"`
	HazardTint     *YAMLColor    `yaml:"hazard_tint"`
	Animation      AnimationSpec `yaml:"animation"`
}

type SpawnSpec struct {
	XMargin   float64         `yaml:"x_margin"`
	VelocityX float64         `yaml:"velocity_x"`
	CullX     float64         `yaml:"cull_x"`
	Script    string          `yaml:"script"`
	Obstacle  SpawnerSpec     `yaml:"obstacle"`
	Mineral   MineralBandSpec `yaml:"mineral"`
}

type SpawnerSpec struct {
	PeriodMS int      `yaml:"period_ms"`
	Options  []string `yaml:"options"`
}

type MineralBandSpec struct {
	SpawnerSpec    `yaml:",inline"`
	MinAboveGround int `yaml:"min_above_ground"`
	MaxAboveGround int `yaml:"max_above_ground"`
}

type SpikeSpec struct {
	Image       string  `yaml:"image"`
	Size        float64 `yaml:"size"`
	Scale       float64 `yaml:"scale"`
	AboveGround float64 `yaml:"above_ground"`
}

type BatSpec struct {
	Size           float64       `yaml:"size"`
	Scale          float64       `yaml:"scale"`
	FlipX          bool          `yaml:"flip_x"`
	MinAboveGround int           `yaml:"min_above_ground"`
	MaxAboveGround int           `yaml:"max_above_ground"`
	Hitbox         HitboxSpec    `yaml:"hitbox"`
	Animation      AnimationSpec `yaml:"animation"`
}

type MineralSpec struct {
	Image string  `yaml:"image"`
	Size  float64 `yaml:"size"`
}

type HUDSpec struct {
	ScoreX         float64    `yaml:"score_x"`
	ScoreY         float64    `yaml:"score_y"`
	ScoreColor     *YAMLColor `yaml:"score_color"`
	ShadowColor    *YAMLColor `yaml:"shadow_color"`
	PulseMS        int        `yaml:"pulse_ms"`
	PulseScale     float64    `yaml:"pulse_scale"`
	GameOverTitle  string     `yaml:"game_over_title"`
	GameOverPrompt string     `yaml:"game_over_prompt"`
	TitleColor     *YAMLColor `yaml:"title_color"`
}

type HitboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type AnimationSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Sheet      string  `yaml:"sheet"`
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

// PeriodTicks converts a millisecond period into ticks of the logical
// clock, never less than one.
func PeriodTicks(ms, tps int) int {
	ticks := int(math.Round(float64(ms) * float64(tps) / 1000))
	if ticks < 1 {
		return 1
	}
	return ticks
}

// ApplyDefaults fills zero values that have a single sensible default.
func (s *GameSpec) ApplyDefaults() {
	if s.Screen.Width == 0 {
		s.Screen.Width = 320
	}
	if s.Screen.Height == 0 {
		s.Screen.Height = 180
	}
	if s.Screen.TPS == 0 {
		s.Screen.TPS = 60
	}
	if s.World.GroundHeight == 0 {
		s.World.GroundHeight = 16
	}
	if s.World.GroundY == 0 {
		s.World.GroundY = float64(s.Screen.Height) - s.World.GroundHeight
	}
	if s.Player.Scale == 0 {
		s.Player.Scale = 1
	}
	if s.Player.Mass == 0 {
		s.Player.Mass = 1
	}
	if s.Player.SwipeThreshold == 0 {
		s.Player.SwipeThreshold = 10
	}
	if s.Player.HazardTint == nil {
		s.Player.HazardTint = &YAMLColor{Color: color.RGBA{R: 0xff, A: 0xff}}
	}
	if s.Spike.Scale == 0 {
		s.Spike.Scale = 1
	}
	if s.Bat.Scale == 0 {
		s.Bat.Scale = 1
	}
	if s.HUD.PulseScale == 0 {
		s.HUD.PulseScale = 1.2
	}
	if s.HUD.ScoreColor == nil {
		s.HUD.ScoreColor = &YAMLColor{Color: color.RGBA{R: 0xff, G: 0xd7, A: 0xff}}
	}
	if s.HUD.ShadowColor == nil {
		s.HUD.ShadowColor = &YAMLColor{Color: color.RGBA{A: 0xff}}
	}
	if s.HUD.TitleColor == nil {
		s.HUD.TitleColor = &YAMLColor{Color: color.RGBA{R: 0xb3, A: 0xff}}
	}
}

// Validate reports every problem found, each wrapping ErrInvalidSpec.
func (s *GameSpec) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...)))
	}

	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		fail("screen size %dx%d", s.Screen.Width, s.Screen.Height)
	}
	if s.Screen.TPS <= 0 {
		fail("tps %d", s.Screen.TPS)
	}
	if s.Player.JumpSpeed <= 0 {
		fail("player jump_speed must be positive")
	}
	if s.Player.RunHitbox.Width <= 0 || s.Player.RunHitbox.Height <= 0 {
		fail("player run_hitbox is empty")
	}
	if s.Player.DuckHitbox.Width <= 0 || s.Player.DuckHitbox.Height <= 0 {
		fail("player duck_hitbox is empty")
	}
	for _, clip := range []string{"run", "down"} {
		if _, ok := s.Player.Animation.Defs[clip]; !ok {
			fail("player animation %q missing", clip)
		}
	}
	if _, ok := s.Bat.Animation.Defs["fly"]; !ok {
		fail("bat animation \"fly\" missing")
	}
	if s.Spawn.Obstacle.PeriodMS <= 0 {
		fail("obstacle period_ms must be positive")
	}
	if s.Spawn.Mineral.PeriodMS <= 0 {
		fail("mineral period_ms must be positive")
	}
	if len(s.Spawn.Obstacle.Options) == 0 {
		fail("obstacle options empty")
	}
	if len(s.Spawn.Mineral.Options) == 0 {
		fail("mineral options empty")
	}
	if s.Spawn.Mineral.MinAboveGround > s.Spawn.Mineral.MaxAboveGround {
		fail("mineral band %d..%d", s.Spawn.Mineral.MinAboveGround, s.Spawn.Mineral.MaxAboveGround)
	}
	if s.Bat.MinAboveGround > s.Bat.MaxAboveGround {
		fail("bat band %d..%d", s.Bat.MinAboveGround, s.Bat.MaxAboveGround)
	}
	for _, key := range s.Spawn.Mineral.Options {
		if _, ok := s.Minerals[key]; !ok {
			fail("mineral %q has no entry under minerals", key)
		}
	}
	if s.HUD.PulseMS < 0 {
		fail("hud pulse_ms %d", s.HUD.PulseMS)
	}

	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as non-premultiplied 8-bit channels.
func (c *YAMLColor) RGBA8() color.RGBA {
	if c == nil || c.Color == nil {
		return color.RGBA{}
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
