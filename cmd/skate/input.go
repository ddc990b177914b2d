package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// action is a logical control
type action int

const (
	actionLeft action = iota
	actionRight
	actionUp
	actionDown
	actionThrottle
	actionBrake
	actionJump
	actionTrick
	actionRespawn
	actionQuit
	actionCount // Must be last - used for array sizing
)

// binding is the keys and buttons that trigger one action
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

const analogDeadzone = 0.25

var bindings = map[action]binding{
	actionLeft: {
		keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	actionRight: {
		keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	actionUp: {
		keys:    []ebiten.Key{ebiten.KeyUp},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	actionDown: {
		keys:    []ebiten.Key{ebiten.KeyDown},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	actionThrottle: {
		keys: []ebiten.Key{ebiten.KeyW},
		// RT / R2
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	actionBrake: {
		keys: []ebiten.Key{ebiten.KeyS},
		// LT / L2
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	actionJump: {
		keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	actionTrick: {
		keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
		// X / Square button
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	actionRespawn: {
		keys: []ebiten.Key{ebiten.KeyR},
		// Back / Share button
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	actionQuit: {
		keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// inputState holds this frame's and last frame's pressed actions plus the
// analog values read from the first active gamepad.
type inputState struct {
	current  [actionCount]bool
	previous [actionCount]bool

	stick    mgl64.Vec2
	throttle float64
}

// poll swaps the buffers and reads keyboard and gamepads.
func (in *inputState) poll() {
	in.previous = in.current
	in.current = [actionCount]bool{}
	in.stick = mgl64.Vec2{}
	in.throttle = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id, b := range bindings {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				in.current[id] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.current[id] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -analogDeadzone || h > analogDeadzone || v < -analogDeadzone || v > analogDeadzone {
			// Screen down is positive on the stick
			in.stick = mgl64.Vec2{h, -v}
		}
		gas := ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomRight)
		brake := ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomLeft)
		if gas-brake != 0 {
			in.throttle = gas - brake
		}
	}
}

func (in *inputState) pressed(a action) bool { return in.current[a] }

func (in *inputState) justPressed(a action) bool { return in.current[a] && !in.previous[a] }

func (in *inputState) justReleased(a action) bool { return !in.current[a] && in.previous[a] }

// move returns the stick vector, with digital input used when the analog
// stick is at rest.
func (in *inputState) move() mgl64.Vec2 {
	if in.stick.Len() > 0 {
		return in.stick
	}
	var v mgl64.Vec2
	if in.pressed(actionLeft) {
		v[0]--
	}
	if in.pressed(actionRight) {
		v[0]++
	}
	if in.pressed(actionUp) {
		v[1]++
	}
	if in.pressed(actionDown) {
		v[1]--
	}
	return v
}

// throttleAxis returns the analog throttle, or the digital one when the
// triggers are at rest.
func (in *inputState) throttleAxis() float64 {
	if in.throttle != 0 {
		return in.throttle
	}
	var t float64
	if in.pressed(actionThrottle) {
		t++
	}
	if in.pressed(actionBrake) {
		t--
	}
	return t
}
