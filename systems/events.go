package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents delivers everything published during the tick. Must run last.
func UpdateEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}
