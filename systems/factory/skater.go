package factory

import (
	"fmt"
	"log"

	"github.com/automoto/skatedog/archetypes"
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SkaterOptions is everything a skater entity is built from. Body is
// required; every other dependency is optional.
type SkaterOptions struct {
	Body    physics.RigidBody
	Ragdoll []components.RagdollPart
	Spawn   physics.Pose
	Catalog *trick.Catalog

	Tuning   config.SkaterConfig
	Ground   config.GroundConfig
	Recovery config.RecoveryConfig

	Animator    components.Animator
	Score       components.ScoreSink
	Checkpoints components.CheckpointProvider
}

// CreateSkater spawns a skater entity. The body is teleported to the spawn
// pose.
func CreateSkater(w donburi.World, opts SkaterOptions) (*donburi.Entry, error) {
	if opts.Body == nil {
		return nil, fmt.Errorf("%w: skater has no rigid body", ErrConfiguration)
	}
	if opts.Tuning.Mass <= 0 {
		return nil, fmt.Errorf("%w: skater mass must be positive", ErrConfiguration)
	}
	if opts.Ground.RaycastDistance <= 0 {
		return nil, fmt.Errorf("%w: ground ray length must be positive", ErrConfiguration)
	}
	if opts.Catalog == nil {
		log.Printf("Warning: skater created without a trick catalog, tricks disabled")
	}

	skater := archetypes.Skater.Spawn(w)

	components.Skater.SetValue(skater, components.NewSkaterData(opts.Tuning, opts.Ground, opts.Spawn))
	components.Body.SetValue(skater, components.BodyData{RigidBody: opts.Body})
	components.Ragdoll.SetValue(skater, components.RagdollData{Parts: opts.Ragdoll})
	components.TrickState.SetValue(skater, components.TrickStateData{
		Catalog: opts.Catalog,
		Buffer:  trick.NewBuffer(opts.Tuning.MaxBufferedDirections),
	})
	components.Recovery.SetValue(skater, components.RecoveryData{Config: opts.Recovery})
	components.Capabilities.SetValue(skater, components.CapabilitiesData{
		Animator:    opts.Animator,
		Score:       opts.Score,
		Checkpoints: opts.Checkpoints,
	})

	opts.Body.SetSimulated(true)
	opts.Body.SetUseGravity(true)
	opts.Body.SetVelocity(mgl64.Vec3{})
	opts.Body.Teleport(opts.Spawn)

	for _, part := range opts.Ragdoll {
		part.Body.SetSimulated(false)
		part.Body.Teleport(opts.Spawn.Offset(part.RestOffset))
	}

	return skater, nil
}

// CreateSkaterBodies builds the controller body and the rider/board ragdoll
// parts in world.
func CreateSkaterBodies(world *physics.World, spawn physics.Pose, tuning config.SkaterConfig, recovery config.RecoveryConfig, phys config.PhysicsConfig) (*physics.Body, []components.RagdollPart) {
	body := world.AddBody(physics.NewBody("skater", tuning.Mass, tuning.ContactRadius, spawn))

	rider := physics.NewBody("rider", recovery.RiderMass, 0.3, spawn)
	rider.Drag = phys.RagdollDrag
	board := physics.NewBody("board", recovery.BoardMass, 0.1, spawn)
	board.Drag = phys.RagdollDrag

	parts := []components.RagdollPart{
		{Name: rider.Name, Body: world.AddBody(rider), RestOffset: mgl64.Vec3(recovery.RiderRestOffset)},
		{Name: board.Name, Body: world.AddBody(board), RestOffset: mgl64.Vec3(recovery.BoardRestOffset)},
	}
	return body, parts
}
