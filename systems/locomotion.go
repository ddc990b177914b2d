package systems

import (
	"math"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SpeedCap returns the horizontal speed limit at now. Zero means no limit.
func SpeedCap(skater *components.SkaterData, now float64) float64 {
	cfg := skater.Tuning
	if cfg.MaxSpeed <= 0 {
		return 0
	}
	if now < skater.AllowOverspeedUntil {
		return cfg.MaxSpeed * math.Max(1, cfg.LandingBoostMaxSpeedMultiplier)
	}
	return cfg.MaxSpeed
}

// ClampHorizontalSpeed rescales the X/Z part of v down to limit, keeping Y.
// A non-positive limit leaves v untouched.
func ClampHorizontalSpeed(v mgl64.Vec3, limit float64) mgl64.Vec3 {
	if limit <= 0 {
		return v
	}
	speed := math.Hypot(v.X(), v.Z())
	if speed <= limit {
		return v
	}
	scale := limit / speed
	return mgl64.Vec3{v.X() * scale, v.Y(), v.Z() * scale}
}

// UpdateLocomotion turns, drives and clamps every active skater using the
// grounded state sampled this tick.
func UpdateLocomotion(w donburi.World) {
	clock := clockOf(w)

	tags.Skater.Each(w, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		skater := components.Skater.Get(e)
		input := components.SkaterInput.Get(e)
		body := components.Body.Get(e)
		cfg := skater.Tuning
		grounded := skater.Grounded

		// Turning
		steer := input.Steer.X()
		suppressed := !grounded && clock.Now < skater.SuppressAirTurnUntil
		if math.Abs(steer) >= cfg.SteerDeadzone && !suppressed {
			turnSpeed := cfg.TurnSpeed
			if !grounded {
				turnSpeed *= cfg.AirTurnSpeedMultiplier
			}
			skater.Yaw = normalizeYaw(skater.Yaw + steer*turnSpeed*clock.DT)
		}
		body.SetRotation(physics.YawPose(body.Position(), skater.Yaw).Rotation)

		// Driving
		if math.Abs(input.Throttle) > cfg.ThrottleDeadzone {
			accel := cfg.Acceleration
			if !grounded {
				accel *= cfg.AirAccelerationMultiplier
			}
			forward := physics.FacingVector(skater.Yaw)
			body.AddForce(forward.Mul(input.Throttle*accel), physics.ForceModeAcceleration)
		} else if grounded {
			v := body.Velocity()
			v[0] *= cfg.Friction
			v[2] *= cfg.Friction
			body.SetVelocity(v)
		}

		body.SetVelocity(ClampHorizontalSpeed(body.Velocity(), SpeedCap(skater, clock.Now)))
	})
}

// normalizeYaw wraps degrees into [-180, 180].
func normalizeYaw(yaw float64) float64 {
	return math.Remainder(yaw, 360)
}
