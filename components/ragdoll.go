package components

import (
	"github.com/automoto/skatedog/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RagdollPart is a secondary body parked at a fixed offset from the
// controller while the skater is in control.
type RagdollPart struct {
	Name       string
	Body       physics.RigidBody
	RestOffset mgl64.Vec3
}

// RagdollData is empty when no ragdoll bodies are wired.
type RagdollData struct {
	Parts []RagdollPart
}

var Ragdoll = donburi.NewComponentType[RagdollData]()
