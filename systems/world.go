package systems

import (
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/yohamta/donburi"
)

// clockOf returns a copy of the world clock. A world without one reads as
// time zero.
func clockOf(w donburi.World) components.ClockData {
	e, ok := components.Clock.First(w)
	if !ok {
		return components.ClockData{}
	}
	return *components.Clock.Get(e)
}

func physicsWorldOf(w donburi.World) *physics.World {
	e, ok := components.PhysicsWorld.First(w)
	if !ok {
		return nil
	}
	return components.PhysicsWorld.Get(e).World
}

func isActive(e *donburi.Entry) bool {
	return components.Recovery.Get(e).State == components.RecoveryActive
}

// generationOf returns the entity's current reset generation.
func generationOf(e *donburi.Entry) uint64 {
	return components.Recovery.Get(e).Generation
}
