package systems

import (
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/yohamta/donburi"
)

// UpdateLanding resolves grounded edges sampled this tick. Both edges drop
// the buffered combo; landing with a trick still locked is a bail.
func UpdateLanding(w donburi.World) {
	now := clockOf(w).Now

	tags.Skater.Each(w, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		skater := components.Skater.Get(e)
		if skater.Grounded == skater.WasGrounded {
			return
		}
		components.TrickState.Get(e).ClearInput()
		if !skater.Grounded {
			return
		}

		caps := components.Capabilities.Get(e)
		if components.TrickState.Get(e).Locked {
			skater.PendingLandingBoost = false
			components.LandingResult.Publish(w, components.LandingResultEvent{
				Entity:  e.Entity(),
				Outcome: components.LandingFail,
			})
			EnterRagdoll(w, e, components.CauseGeneric)
			return
		}

		if !skater.PendingLandingBoost {
			return
		}
		skater.PendingLandingBoost = false
		applyLandingBoost(skater, components.Body.Get(e), now)
		caps.ComboLanded()
		components.LandingResult.Publish(w, components.LandingResultEvent{
			Entity:  e.Entity(),
			Outcome: components.LandingBoost,
		})
	})
}

func applyLandingBoost(skater *components.SkaterData, body physics.RigidBody, now float64) {
	cfg := skater.Tuning

	dir := physics.FacingVector(skater.Yaw)
	if h := physics.Horizontal(body.Velocity()); h.Len() > cfg.LandingBoostMinHorizontalSpeed && h.Len() > 0 {
		dir = h.Normalize()
	}
	body.AddForce(dir.Mul(cfg.LandingBoostImpulse), physics.ForceModeImpulse)

	if cfg.LandingBoostMaxSpeedMultiplier > 1 && cfg.LandingBoostOverspeedDuration > 0 {
		skater.ExtendOverspeed(now + cfg.LandingBoostOverspeedDuration)
	}
}
