package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	stickDeadzone = 0.15
	// creepFactor scales movement while the creep key is held; slow enough to
	// stay under the default animation threshold.
	creepFactor = 0.05
)

// Input holds current input state for horizontal movement and menus.
type Input struct {
	// MoveX is in [-1, 1]; negative is left. Keyboard gives -1/0/+1, the
	// left stick gives analog values.
	MoveX float64
	// PausePressed is true on the frame Escape or Start was pressed.
	PausePressed bool
	// QuitPressed is true on the frame F12 was pressed.
	QuitPressed bool
	// ReloadPressed is true on the frame F5 was pressed.
	ReloadPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls keyboard and the first gamepad.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	creep := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)

	var gpPause bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if moveX == 0 {
			moveX = applyDeadzone(leftX, stickDeadzone)
		}
		gpPause = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		creep = creep || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomLeft)
	}
	if creep {
		moveX *= creepFactor
	}

	i.MoveX = moveX
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPause
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.ReloadPressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
}

// applyDeadzone zeroes |v| below dz and rescales the rest to [-1, 1].
func applyDeadzone(v, dz float64) float64 {
	a := math.Abs(v)
	if a < dz {
		return 0
	}
	if a > 1 {
		a = 1
	}
	return math.Copysign((a-dz)/(1-dz), v)
}
