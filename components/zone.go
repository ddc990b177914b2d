package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ZoneData links a course entity to its trigger rectangle in the physics
// world. The object's Data points back at the entry.
type ZoneData struct {
	*resolv.Object
}

var Zone = donburi.NewComponentType[ZoneData]()
