package component

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/runjump/common"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"negative_dampener_allowed", func(c *Config) { c.JumpDampener = -3 }, true},
		{"zero_dash_duration", func(c *Config) { c.DashDuration = 0 }, true},
		{"min_lerp_edges", func(c *Config) { c.MinJumpLerp = 1 }, true},
		{"negative_gravity", func(c *Config) { c.GravityStrength = -1 }, false},
		{"negative_dash_duration", func(c *Config) { c.DashDuration = -0.1 }, false},
		{"negative_run_speed", func(c *Config) { c.RunSpeedMax = -5 }, false},
		{"zero_jump_speed", func(c *Config) { c.JumpSpeed = 0 }, false},
		{"min_lerp_above_one", func(c *Config) { c.MinJumpLerp = 1.5 }, false},
		{"min_lerp_negative", func(c *Config) { c.MinJumpLerp = -0.1 }, false},
		{"zero_half_height", func(c *Config) { c.HalfHeight = 0 }, false},
		{"nan_speed", func(c *Config) { c.DashSpeed = math.NaN() }, false},
		{"inf_dampener", func(c *Config) { c.JumpDampener = math.Inf(1) }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.ok && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !c.ok {
				if err == nil {
					t.Fatalf("expected validation error")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestNewMovementControllerValidates(t *testing.T) {
	cfg := testConfig()
	cfg.JumpHeight = -1
	if _, err := NewMovementController(cfg, NoGround, common.Vec2{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
