package components

import (
	"github.com/automoto/skatedog/trick"
	"github.com/yohamta/donburi"
)

// TrickStateData is the trick buffer and executor state of one skater.
type TrickStateData struct {
	Catalog *trick.Catalog // nil disables tricks
	Buffer  trick.Buffer

	LastDirection    trick.Direction
	HasLastDirection bool
	TriggerHeld      bool

	Locked bool
	Active trick.Definition // valid while Locked
	Unlock Deadline
}

var TrickState = donburi.NewComponentType[TrickStateData]()

// ClearInput drops the buffered combo and the debounce marker.
func (t *TrickStateData) ClearInput() {
	t.Buffer.Clear()
	t.HasLastDirection = false
}

// Reset clears all input and any running trick.
func (t *TrickStateData) Reset() {
	t.ClearInput()
	t.TriggerHeld = false
	t.Locked = false
	t.Active = trick.Definition{}
	t.Unlock.Cancel()
}
