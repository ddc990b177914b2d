package components

import (
	"github.com/automoto/skatedog/physics"
	"github.com/yohamta/donburi"
)

type PhysicsWorldData struct {
	*physics.World
	KillHeight float64 // anything active below this height bails
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
