package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/runjump/common"
)

var ErrInvalidConfig = errors.New("movement: invalid config")

// DefaultProbeDistance is how far below the character's base the ground
// probe reaches.
const DefaultProbeDistance = 0.1

// Config holds the movement tunables and the character geometry. Values are
// in world units and seconds.
type Config struct {
	GravityStrength float64
	RunAcceleration float64
	RunSpeedMax     float64
	JumpHeight      float64
	JumpSpeed       float64
	JumpDampener    float64
	MinJumpLerp     float64
	DashSpeed       float64
	DashDuration    float64

	HalfWidth  float64
	HalfHeight float64
}

// Validate rejects values the tick algorithm does not re-check at runtime.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"gravity_strength", c.GravityStrength},
		{"run_acceleration", c.RunAcceleration},
		{"run_speed_max", c.RunSpeedMax},
		{"jump_height", c.JumpHeight},
		{"jump_speed", c.JumpSpeed},
		{"jump_dampener", c.JumpDampener},
		{"min_jump_lerp", c.MinJumpLerp},
		{"dash_speed", c.DashSpeed},
		{"dash_duration", c.DashDuration},
		{"half_width", c.HalfWidth},
		{"half_height", c.HalfHeight},
	}
	for _, f := range fields {
		if !common.IsFinite(f.v) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}

	// jump_dampener may be negative, which slows the arc down.
	for _, f := range fields {
		if f.name != "jump_dampener" && f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}

	if c.JumpSpeed <= 0 {
		return fmt.Errorf("%w: jump_speed must be positive, got %v", ErrInvalidConfig, c.JumpSpeed)
	}
	if c.MinJumpLerp > 1 {
		return fmt.Errorf("%w: min_jump_lerp must be within [0,1], got %v", ErrInvalidConfig, c.MinJumpLerp)
	}
	if c.HalfHeight <= 0 {
		return fmt.Errorf("%w: half_height must be positive, got %v", ErrInvalidConfig, c.HalfHeight)
	}
	return nil
}
