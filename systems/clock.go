package systems

import (
	"github.com/automoto/skatedog/components"
	"github.com/yohamta/donburi"
)

// UpdateClock advances simulated time by the tick length. Must run first.
func UpdateClock(w donburi.World) {
	e, ok := components.Clock.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	clock.Now += clock.DT
	clock.Tick++
}
