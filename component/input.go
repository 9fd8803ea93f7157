package component

import "github.com/milk9111/runjump/common"

// Input is what the controller consumes on one fixed tick.
type Input struct {
	// MoveX is the directional input in [-1,1].
	MoveX float64
	// JumpHeld is true while the jump control is down.
	JumpHeld bool
	// JumpPressed is true on the tick a jump press is delivered.
	JumpPressed bool
	// DashPressed is true on the tick a dash press is delivered.
	DashPressed bool
}

// InputReader is polled for raw input once per render frame.
type InputReader interface {
	DirectionalInput() float64
	JumpHeld() bool
	JumpEdge() bool
	DashEdge() bool
}

// InputLatch bridges a variable-rate sampler and the fixed-rate tick. Edges
// seen by Sample are kept until the next Consume and delivered exactly once.
type InputLatch struct {
	moveX    float64
	jumpHeld bool
	jump     bool
	dash     bool
}

func (l *InputLatch) Sample(r InputReader) {
	if l == nil || r == nil {
		return
	}
	l.moveX = common.Clamp(r.DirectionalInput(), -1, 1)
	l.jumpHeld = r.JumpHeld()
	if r.JumpEdge() {
		l.jump = true
	}
	if r.DashEdge() {
		l.dash = true
	}
}

// Consume returns the current input and clears the latched edges.
func (l *InputLatch) Consume() Input {
	if l == nil {
		return Input{}
	}
	in := Input{
		MoveX:       l.moveX,
		JumpHeld:    l.jumpHeld,
		JumpPressed: l.jump,
		DashPressed: l.dash,
	}
	l.jump = false
	l.dash = false
	return in
}

// Pending reports whether an edge is waiting for the next tick.
func (l *InputLatch) Pending() bool {
	return l != nil && (l.jump || l.dash)
}
