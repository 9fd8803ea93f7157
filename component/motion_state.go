package component

import "github.com/milk9111/runjump/common"

type DashState int

const (
	DashIdle DashState = iota
	DashLeft
	DashRight
)

func (d DashState) String() string {
	switch d {
	case DashLeft:
		return "dashing left"
	case DashRight:
		return "dashing right"
	default:
		return "idle"
	}
}

// Direction is -1 for DashLeft, 1 for DashRight and 0 otherwise.
func (d DashState) Direction() float64 {
	switch d {
	case DashLeft:
		return -1
	case DashRight:
		return 1
	default:
		return 0
	}
}

func dashFromDirection(dir float64) DashState {
	switch {
	case dir < 0:
		return DashLeft
	case dir > 0:
		return DashRight
	default:
		return DashIdle
	}
}

// MotionState is the per-character movement state. It is owned by a single
// MovementController and only changes inside Tick.
type MotionState struct {
	RunProgress   float64
	LastDirection float64

	JumpProgress float64
	JumpOriginY  float64
	JumpTargetY  float64
	Ascending    bool
	JumpHeld     bool

	Dash        DashState
	DashElapsed float64

	Position common.Vec2
}

func newMotionState(spawn common.Vec2) MotionState {
	return MotionState{
		JumpProgress: 1,
		Dash:         DashIdle,
		Position:     spawn,
	}
}

func (s MotionState) Dashing() bool {
	return s.Dash != DashIdle
}
