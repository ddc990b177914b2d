package systems

import (
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// IsGrounded casts the ground ray straight down from origin. The normal is
// only meaningful when grounded.
func IsGrounded(world *physics.World, origin mgl64.Vec3, cfg config.GroundConfig) (bool, mgl64.Vec3) {
	if world == nil {
		return false, mgl64.Vec3{}
	}
	hit, ok := world.RaycastDown(origin, cfg.RaycastDistance, cfg.Layer)
	if !ok {
		return false, mgl64.Vec3{}
	}
	return true, hit.Normal
}

// UpdateGroundSensor samples the grounded state once per tick. Every other
// system in the tick reads the held value.
func UpdateGroundSensor(w donburi.World) {
	world := physicsWorldOf(w)

	tags.Skater.Each(w, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		skater := components.Skater.Get(e)
		body := components.Body.Get(e)

		skater.WasGrounded = skater.Grounded
		skater.Grounded, skater.SurfaceNormal = IsGrounded(world, body.Position(), skater.Ground)

		if skater.Grounded {
			skater.Landing = components.Grounded
		} else {
			skater.Landing = components.Airborne
			skater.LastAirVelocity = body.Velocity()
		}
	})
}
