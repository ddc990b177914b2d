package systems

import (
	"log"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EnterRagdoll hands the skater over to its ragdoll bodies, drops the running
// combo and schedules the respawn. It does nothing unless the skater is in
// control, so repeated calls never stack respawns.
func EnterRagdoll(w donburi.World, e *donburi.Entry, cause components.BailCause) bool {
	rec := components.Recovery.Get(e)
	if rec.State != components.RecoveryActive {
		return false
	}
	now := clockOf(w).Now
	skater := components.Skater.Get(e)
	body := components.Body.Get(e)

	rec.State = components.RecoveryRagdoll
	rec.Cause = cause
	rec.Fade = nil
	rec.FadeAlpha = 0
	rec.Respawn.Arm(now+rec.Config.RespawnDelay, rec.Generation)
	components.Capabilities.Get(e).ComboBailed()

	skater.Landing = components.Recovering
	skater.JumpCharging = false
	skater.JumpCharge = 0

	pose := physics.Pose{Position: body.Position(), Rotation: body.Rotation()}
	body.SetSimulated(false)

	for _, part := range components.Ragdoll.Get(e).Parts {
		part.Body.Teleport(pose.Offset(part.RestOffset))
		part.Body.SetSimulated(true)
		part.Body.SetUseGravity(true)
		part.Body.SetVelocity(skater.LastAirVelocity)
	}

	components.RagdollEntered.Publish(w, components.RagdollEnteredEvent{
		Entity: e.Entity(),
		Cause:  cause,
	})
	return true
}

// Respawn puts the skater back in control at its last checkpoint, or at
// its spawn pose when no checkpoint was reached. A respawn while still in
// control counts as a bail.
func Respawn(w donburi.World, e *donburi.Entry) {
	rec := components.Recovery.Get(e)
	skater := components.Skater.Get(e)
	ts := components.TrickState.Get(e)
	body := components.Body.Get(e)
	caps := components.Capabilities.Get(e)

	if rec.State == components.RecoveryActive {
		caps.ComboBailed()
	}
	rec.Generation++
	rec.State = components.RecoveryActive
	rec.Respawn.Cancel()
	rec.Fade = nil
	rec.FadeAlpha = 0

	for _, part := range components.Ragdoll.Get(e).Parts {
		part.Body.SetSimulated(false)
	}

	pose, atCheckpoint := caps.RespawnPose(skater.SpawnPose)

	body.SetSimulated(true)
	body.SetVelocity(mgl64.Vec3{})
	body.Teleport(pose)

	if ts.Locked {
		caps.StopTrick()
	}
	ts.Reset()
	skater.Reset(pose.Yaw())
	placeRagdoll(e)

	components.RespawnCompleted.Publish(w, components.RespawnCompletedEvent{
		Entity:       e.Entity(),
		AtCheckpoint: atCheckpoint,
	})
}

// UpdateRecovery drives ragdoll -> fade out -> respawn -> fade in.
func UpdateRecovery(w donburi.World) {
	clock := clockOf(w)

	tags.Skater.Each(w, func(e *donburi.Entry) {
		rec := components.Recovery.Get(e)

		switch rec.State {
		case components.RecoveryRagdoll:
			fired, stale := rec.Respawn.Poll(clock.Now, rec.Generation)
			if stale {
				log.Printf("Warning: ignoring stale respawn for entity %v", e.Entity())
			}
			if !fired {
				return
			}
			if rec.Config.FadeOutDuration <= 0 {
				Respawn(w, e)
				startFadeIn(rec)
				return
			}
			rec.State = components.RecoveryRespawning
			rec.Fade = gween.New(0, 1, float32(rec.Config.FadeOutDuration), ease.Linear)

		case components.RecoveryRespawning:
			if !advanceFade(rec, clock.DT) {
				return
			}
			Respawn(w, e)
			startFadeIn(rec)

		case components.RecoveryActive:
			if rec.Fade != nil && advanceFade(rec, clock.DT) {
				rec.Fade = nil
			}
		}
	})
}

func startFadeIn(rec *components.RecoveryData) {
	if rec.Config.FadeInDuration <= 0 {
		return
	}
	rec.FadeAlpha = 1
	rec.Fade = gween.New(1, 0, float32(rec.Config.FadeInDuration), ease.Linear)
}

// advanceFade steps the fade tween and reports whether it finished.
func advanceFade(rec *components.RecoveryData, dt float64) bool {
	if rec.Fade == nil {
		return true
	}
	alpha, done := rec.Fade.Update(float32(dt))
	rec.FadeAlpha = float64(alpha)
	return done
}

// placeRagdoll parks the ragdoll parts at their rest offsets around the
// controller.
func placeRagdoll(e *donburi.Entry) {
	body := components.Body.Get(e)
	pose := physics.Pose{Position: body.Position(), Rotation: body.Rotation()}
	for _, part := range components.Ragdoll.Get(e).Parts {
		part.Body.Teleport(pose.Offset(part.RestOffset))
	}
}
