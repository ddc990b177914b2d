package factory

import (
	"github.com/automoto/skatedog/archetypes"
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/yohamta/donburi"
)

// CreatePhysicsWorld creates the physics world entity covering width x depth
// meters.
func CreatePhysicsWorld(w donburi.World, width, depth float64, cfg config.PhysicsConfig, killHeight float64) *donburi.Entry {
	entry := archetypes.PhysicsWorld.Spawn(w)
	world := physics.NewWorld(width, depth, cfg.SpaceCell, cfg.Gravity)
	world.StepUp = cfg.StepUp
	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{
		World:      world,
		KillHeight: killHeight,
	})
	return entry
}

// CreateClock creates the clock entity ticking dt seconds per update.
func CreateClock(w donburi.World, dt float64) *donburi.Entry {
	entry := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(entry, components.ClockData{DT: dt})
	return entry
}
