package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickDeadzone is how far the left stick must travel before it counts as a
// direction.
const stickDeadzone = 0.3

// Input polls keyboard and the first gamepad once per frame and exposes the
// result as a component.InputReader.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right. A gamepad stick
	// reports its analog value past the deadzone.
	MoveX float64
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// JumpDown is true while the jump key is held down.
	JumpDown bool
	// DashPressed is true on the frame the dash key/button was pressed.
	DashPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX float64
	// Keyboard D/A or arrows
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	var gpJumpJustPressed, gpJumpHeld, gpDashJustPressed bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone || leftX > stickDeadzone {
			moveX = leftX
		}

		// A/primary
		gpJumpJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpJumpHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		// X button (standard mapping: right-left)
		gpDashJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	}

	i.MoveX = moveX
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJumpJustPressed
	i.JumpDown = ebiten.IsKeyPressed(ebiten.KeySpace) || gpJumpHeld
	// Dash: Left Shift key or gamepad X button
	i.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || gpDashJustPressed
}

func (i *Input) DirectionalInput() float64 { return i.MoveX }
func (i *Input) JumpHeld() bool            { return i.JumpDown }
func (i *Input) JumpEdge() bool            { return i.JumpPressed }
func (i *Input) DashEdge() bool            { return i.DashPressed }
