package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type FinishLineData struct {
	Direction mgl64.Vec3 // horizontal unit vector a valid crossing moves along
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
