package archetypes

import (
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/tags"
	"github.com/yohamta/donburi"
)

var (
	Skater = newArchetype(
		tags.Skater,
		components.Skater,
		components.SkaterInput,
		components.Body,
		components.Ragdoll,
		components.TrickState,
		components.Recovery,
		components.Capabilities,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Zone,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Zone,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Zone,
	)
	Course = newArchetype(
		components.Progress,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
