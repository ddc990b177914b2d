package components

import "github.com/yohamta/donburi"

// HazardData is a volume the skater bails in once below Surface.
type HazardData struct {
	Name    string
	Surface float64
}

var Hazard = donburi.NewComponentType[HazardData]()
