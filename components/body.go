package components

import (
	"github.com/automoto/skatedog/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	physics.RigidBody
}

var Body = donburi.NewComponentType[BodyData]()
