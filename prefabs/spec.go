package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/runjump/component"
	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile = "player.yaml"
	LevelSpecFile  = "level.yaml"
)

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

type PlayerSpec struct {
	Name            string       `yaml:"name"`
	GravityStrength float64      `yaml:"gravity_strength"`
	RunAcceleration float64      `yaml:"run_acceleration"`
	RunSpeedMax     float64      `yaml:"run_speed_max"`
	JumpHeight      float64      `yaml:"jump_height"`
	JumpSpeed       float64      `yaml:"jump_speed"`
	JumpDampener    float64      `yaml:"jump_dampener"`
	MinJumpLerp     float64      `yaml:"min_jump_lerp"`
	DashSpeed       float64      `yaml:"dash_speed"`
	DashDuration    float64      `yaml:"dash_duration"`
	TickRate        float64      `yaml:"tick_rate"`
	ProbeDistance   float64      `yaml:"probe_distance"`
	GroundLayers    []string     `yaml:"ground_layers"`
	Collider        ColliderSpec `yaml:"collider"`
	Color           *YAMLColor   `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MovementConfig maps the spec onto the controller tunables and validates
// them.
func (s *PlayerSpec) MovementConfig() (component.Config, error) {
	if s == nil {
		return component.Config{}, fmt.Errorf("prefabs: nil player spec")
	}
	cfg := component.Config{
		GravityStrength: s.GravityStrength,
		RunAcceleration: s.RunAcceleration,
		RunSpeedMax:     s.RunSpeedMax,
		JumpHeight:      s.JumpHeight,
		JumpSpeed:       s.JumpSpeed,
		JumpDampener:    s.JumpDampener,
		MinJumpLerp:     s.MinJumpLerp,
		DashSpeed:       s.DashSpeed,
		DashDuration:    s.DashDuration,
		HalfWidth:       s.Collider.Width / 2,
		HalfHeight:      s.Collider.Height / 2,
	}
	if err := cfg.Validate(); err != nil {
		return component.Config{}, fmt.Errorf("prefabs: %s: %w", PlayerSpecFile, err)
	}
	return cfg, nil
}

// FixedStep is the controller tick length in seconds.
func (s *PlayerSpec) FixedStep() float64 {
	if s == nil || s.TickRate <= 0 {
		return 1.0 / 50
	}
	return 1.0 / s.TickRate
}

// Probe returns the configured probe distance, falling back to the default.
func (s *PlayerSpec) Probe() float64 {
	if s == nil || s.ProbeDistance <= 0 {
		return component.DefaultProbeDistance
	}
	return s.ProbeDistance
}

type LevelSpec struct {
	Name          string         `yaml:"name"`
	Spawn         PointSpec      `yaml:"spawn"`
	PixelsPerUnit float64        `yaml:"pixels_per_unit"`
	KillY         float64        `yaml:"kill_y"`
	Background    *YAMLColor     `yaml:"background"`
	Layers        []LayerSpec    `yaml:"layers"`
	Platforms     []PlatformSpec `yaml:"platforms"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LayerSpec struct {
	Name  string     `yaml:"name"`
	Color *YAMLColor `yaml:"color"`
}

// PlatformSpec is a static box. X/Y is its bottom-left corner in world units.
type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Layer  string  `yaml:"layer"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type YAMLColor struct {
	color.Color
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

// ColorOr returns the parsed color or fallback when unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
