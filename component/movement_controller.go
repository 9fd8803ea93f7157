package component

import (
	"fmt"
	"math"

	"github.com/milk9111/runjump/common"
)

// arcEpsilon absorbs float accumulation so an arc whose progress sums to
// 0.9999999999999999 still lands on its target.
const arcEpsilon = 1e-9

// MovementController advances one character's MotionState per fixed tick.
type MovementController struct {
	cfg   Config
	probe GroundProbe
	state MotionState
	spawn common.Vec2

	prevJumpHeld bool
	grounded     bool
	tick         int

	lastMoveX float64
	speedX    float64
	speedY    float64
}

func NewMovementController(cfg Config, probe GroundProbe, spawn common.Vec2) (*MovementController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if probe == nil {
		return nil, fmt.Errorf("movement: nil ground probe")
	}
	return &MovementController{
		cfg:   cfg,
		probe: probe,
		state: newMotionState(spawn),
		spawn: spawn,
	}, nil
}

func (c *MovementController) Config() Config {
	return c.cfg
}

// SetConfig swaps the tunables without touching the motion state.
func (c *MovementController) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// Reset puts the character back at spawn with a fresh state.
func (c *MovementController) Reset(spawn common.Vec2) {
	c.state = newMotionState(spawn)
	c.spawn = spawn
	c.prevJumpHeld = false
	c.grounded = false
	c.lastMoveX = 0
	c.speedX = 0
	c.speedY = 0
}

// State returns a copy of the motion state.
func (c *MovementController) State() MotionState {
	return c.state
}

func (c *MovementController) Position() common.Vec2 {
	return c.state.Position
}

// Grounded reports the ground contact seen by the most recent tick.
func (c *MovementController) Grounded() bool {
	return c.grounded
}

// Tick advances the state by dt seconds and returns the new position. A
// non-positive dt leaves everything untouched.
func (c *MovementController) Tick(in Input, dt float64) common.Vec2 {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return c.state.Position
	}
	if !common.IsFinite(in.MoveX) {
		in.MoveX = 0
	}
	in.MoveX = common.Clamp(in.MoveX, -1, 1)

	s := &c.state
	surface, grounded := c.probe.Probe(s.Position, c.cfg.HalfHeight)

	jumpEdge := in.JumpPressed || (in.JumpHeld && !c.prevJumpHeld)
	c.prevJumpHeld = in.JumpHeld

	// dash
	if in.DashPressed && !s.Dashing() && c.cfg.DashDuration > 0 {
		if dash := dashFromDirection(s.LastDirection); dash != DashIdle {
			s.DashElapsed = 0
			s.Ascending = false
			s.Dash = dash
		}
	}
	if s.Dashing() {
		if s.DashElapsed >= c.cfg.DashDuration {
			s.Dash = DashIdle
		} else {
			s.DashElapsed += dt
		}
	}

	// jump
	if jumpEdge && grounded && !s.Ascending && !s.Dashing() {
		s.JumpProgress = 0
		s.JumpOriginY = s.Position.Y
		s.JumpTargetY = s.JumpOriginY + c.cfg.JumpHeight
		s.Ascending = true
		s.JumpHeld = true
	}
	if !in.JumpHeld {
		s.JumpHeld = false
	}

	c.updateRun(in.MoveX, dt)

	var dx float64
	if s.Dashing() {
		dx = s.Dash.Direction() * c.cfg.DashSpeed * dt
	} else {
		dx = s.LastDirection * c.cfg.RunSpeedMax * s.RunProgress * dt
	}

	y := s.Position.Y
	switch {
	case s.Dashing():
	case s.Ascending:
		y = c.advanceArc(dt)
	case !grounded:
		y -= c.cfg.GravityStrength * dt
	default:
		y = surface.TopY + c.cfg.HalfHeight
	}

	prev := s.Position
	s.Position = common.Vec2{X: prev.X + dx, Y: y}

	c.grounded = grounded
	c.lastMoveX = in.MoveX
	c.speedX = dx / dt
	c.speedY = (y - prev.Y) / dt
	c.tick++
	return s.Position
}

func (c *MovementController) updateRun(moveX, dt float64) {
	s := &c.state
	dir := common.Sign(moveX)
	if dir != 0 && s.LastDirection != 0 && dir != s.LastDirection {
		s.RunProgress = 0
		s.LastDirection = dir
		return
	}
	if dir != 0 {
		s.LastDirection = dir
		s.RunProgress += c.cfg.RunAcceleration * dt
	} else {
		s.RunProgress -= c.cfg.RunAcceleration * dt
	}
	s.RunProgress = common.Clamp(s.RunProgress, 0, 1)
}

// advanceArc moves the jump interpolation forward and ends the ascent once
// the arc completes or the player let go past the minimum fraction.
func (c *MovementController) advanceArc(dt float64) float64 {
	s := &c.state
	s.JumpProgress += c.cfg.JumpSpeed * dt * math.Exp(c.cfg.JumpDampener*s.JumpProgress)

	if s.JumpProgress >= 1-arcEpsilon {
		s.JumpProgress = math.Max(s.JumpProgress, 1)
		s.Ascending = false
		return s.JumpTargetY
	}

	y := common.Lerp(s.JumpOriginY, s.JumpTargetY, s.JumpProgress)
	if s.JumpProgress >= c.cfg.MinJumpLerp && !s.JumpHeld {
		s.Ascending = false
	}
	return y
}
