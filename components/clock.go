package components

import "github.com/yohamta/donburi"

// ClockData is the simulated time shared by all systems.
type ClockData struct {
	Now  float64 // seconds since start, advanced once per tick
	DT   float64 // length of the current tick
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()
