package systems

import (
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Input handlers may be called at any time between ticks. They read the
// grounded state held from the last tick and only stage state, except for
// the jump release impulse.

// OnMove stores the steering stick and feeds the trick buffer.
func OnMove(w donburi.World, e *donburi.Entry, v mgl64.Vec2) {
	components.SkaterInput.Get(e).Steer = v
	if !isActive(e) {
		return
	}

	skater := components.Skater.Get(e)
	ts := components.TrickState.Get(e)

	dir, ok := trick.Classify(v, skater.Tuning.TrickDirectionDeadzone)
	if !ok {
		ts.HasLastDirection = false
		return
	}
	if ts.HasLastDirection && ts.LastDirection == dir {
		return
	}

	if !skater.Grounded {
		ts.Buffer.Push(dir)
		if dir.Horizontal() {
			skater.ExtendAirTurnSuppress(clockOf(w).Now + skater.Tuning.AirTurnSuppressDuration)
		}
	}
	if ts.TriggerHeld {
		trySingleTrick(w, e, dir)
	}

	ts.LastDirection = dir
	ts.HasLastDirection = true
}

// OnThrottle stores the throttle axis, clamped to [-1, 1].
func OnThrottle(w donburi.World, e *donburi.Entry, throttle float64) {
	components.SkaterInput.Get(e).Throttle = mgl64.Clamp(throttle, -1, 1)
}

// OnJump starts charging on press and launches on release.
func OnJump(w donburi.World, e *donburi.Entry, pressed bool) {
	skater := components.Skater.Get(e)
	if !isActive(e) {
		skater.JumpCharging = false
		skater.JumpCharge = 0
		return
	}

	now := clockOf(w).Now
	if pressed {
		beginJump(skater, now)
		return
	}
	releaseJump(skater, components.Body.Get(e), now)
}

// OnTrick tracks the trick trigger and runs a combo on its rising edge.
func OnTrick(w donburi.World, e *donburi.Entry, pressed bool) {
	ts := components.TrickState.Get(e)
	rising := pressed && !ts.TriggerHeld
	ts.TriggerHeld = pressed
	if rising {
		tryComboTrick(w, e)
	}
}
