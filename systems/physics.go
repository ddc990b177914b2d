package systems

import (
	"github.com/automoto/skatedog/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates the physics world and keeps parked ragdoll parts
// attached to their controllers.
func UpdatePhysics(w donburi.World) {
	world := physicsWorldOf(w)
	if world == nil {
		return
	}
	world.Step(clockOf(w).DT)

	tags.Skater.Each(w, func(e *donburi.Entry) {
		if isActive(e) {
			placeRagdoll(e)
		}
	})
}
