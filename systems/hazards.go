package systems

import (
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/tags"
	"github.com/yohamta/donburi"
)

// UpdateHazards bails skaters that sank into a hazard zone or fell below
// the world.
func UpdateHazards(w donburi.World) {
	we, ok := components.PhysicsWorld.First(w)
	if !ok {
		return
	}
	world := components.PhysicsWorld.Get(we)

	tags.Skater.Each(w, func(e *donburi.Entry) {
		if !isActive(e) {
			return
		}
		pos := components.Body.Get(e).Position()
		if pos.Y() < world.KillHeight {
			EnterRagdoll(w, e, components.CauseHazard)
			return
		}

		contact := pos.Y() - components.Skater.Get(e).Tuning.ContactRadius
		for _, o := range world.ZonesAt(pos.X(), pos.Z(), tags.ResolvHazard) {
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || entry == nil || !entry.HasComponent(components.Hazard) {
				continue
			}
			if contact < components.Hazard.Get(entry).Surface {
				EnterRagdoll(w, e, components.CauseHazard)
				return
			}
		}
	})
}
