package systems

import (
	"math"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/yohamta/donburi"
)

// JumpImpulse maps a charge time onto [JumpImpulseMin, JumpImpulseMax].
func JumpImpulse(cfg config.SkaterConfig, charged float64) float64 {
	t := 1.0
	if cfg.JumpChargeMax > 0 {
		t = clamp01(charged / cfg.JumpChargeMax)
	}
	return cfg.JumpImpulseMin + (cfg.JumpImpulseMax-cfg.JumpImpulseMin)*t
}

// UpdateJumpCharge accumulates hold time for skaters charging a jump.
func UpdateJumpCharge(w donburi.World) {
	dt := clockOf(w).DT

	tags.Skater.Each(w, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		skater := components.Skater.Get(e)
		if !skater.JumpCharging {
			return
		}
		skater.JumpCharge = math.Min(skater.JumpCharge+dt, skater.Tuning.JumpChargeMax)
	})
}

// beginJump starts charging if the skater is grounded and off cooldown.
func beginJump(skater *components.SkaterData, now float64) bool {
	if skater.JumpCharging || !skater.Grounded {
		return false
	}
	if now < skater.LastJumpAt+skater.Tuning.JumpCooldown {
		return false
	}
	skater.JumpCharging = true
	skater.JumpCharge = 0
	return true
}

// releaseJump launches a charged jump. Releasing after leaving the ground
// drops the charge.
func releaseJump(skater *components.SkaterData, body physics.RigidBody, now float64) bool {
	if !skater.JumpCharging {
		return false
	}
	charged := skater.JumpCharge
	skater.JumpCharging = false
	skater.JumpCharge = 0
	if !skater.Grounded {
		return false
	}

	v := body.Velocity()
	v[1] = 0
	body.SetVelocity(v)
	body.AddForce(physics.Up.Mul(JumpImpulse(skater.Tuning, charged)), physics.ForceModeVelocityChange)
	skater.LastJumpAt = now
	return true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
