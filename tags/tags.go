package tags

import "github.com/yohamta/donburi"

var (
	Skater     = donburi.NewTag().SetName("Skater")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	FinishLine = donburi.NewTag().SetName("FinishLine")
	Hazard     = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for zones in the physics world
const (
	ResolvCheckpoint = "checkpoint"
	ResolvFinishLine = "finishline"
	ResolvHazard     = "hazard"
)
