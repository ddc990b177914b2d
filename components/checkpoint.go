package components

import (
	"github.com/automoto/skatedog/physics"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID       int
	Required bool
	Pose     physics.Pose // respawn pose at the center of the checkpoint
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
