package factory

import (
	"fmt"

	"github.com/automoto/skatedog/archetypes"
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/course"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateCourse adds the course's ground to world, spawns its checkpoint,
// finish and hazard entities and the progress tracker. It returns the
// progress entry and the spawn pose.
func CreateCourse(w donburi.World, world *physics.World, c *course.Course, cfg config.CourseConfig) (*donburi.Entry, physics.Pose, error) {
	if c == nil || world == nil {
		return nil, physics.Pose{}, fmt.Errorf("%w: course needs a physics world", ErrConfiguration)
	}

	for _, g := range c.Ground {
		world.AddGround(&physics.GroundPiece{
			X:      g.X,
			Z:      g.Z,
			Width:  g.Width,
			Depth:  g.Depth,
			Base:   g.Height,
			SlopeX: g.SlopeX,
			SlopeZ: g.SlopeZ,
			Layer:  g.Layer,
		})
	}

	spawn, ok := poseOnGround(world, c.Spawn.X, c.Spawn.Z, c.Spawn.Yaw, cfg.SpawnHeight)
	if !ok {
		return nil, physics.Pose{}, fmt.Errorf("%w: spawn (%.1f, %.1f) of %s is not above ground", ErrConfiguration, c.Spawn.X, c.Spawn.Z, c.Name)
	}

	for _, cp := range c.Checkpoints {
		x, z := cp.Center()
		pose, _ := poseOnGround(world, x, z, cp.Yaw, cfg.SpawnHeight)
		CreateCheckpoint(w, world, cp, pose)
	}
	if c.Finish != nil {
		CreateFinishLine(w, world, *c.Finish)
	}
	for _, hz := range c.Hazards {
		CreateHazard(w, world, hz)
	}

	progress := CreateProgress(w, cfg.MaxLaps, c.RequiredCheckpoints(), cfg.FinishMinDot, 0)
	return progress, spawn, nil
}

// CreateCheckpoint creates a checkpoint entity with its trigger zone.
func CreateCheckpoint(w donburi.World, world *physics.World, cp course.Checkpoint, pose physics.Pose) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(w)

	obj := world.AddZone(cp.X, cp.Z, cp.Width, cp.Depth, checkpoint, tags.ResolvCheckpoint)
	components.Zone.SetValue(checkpoint, components.ZoneData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:       cp.ID,
		Required: cp.Required,
		Pose:     pose,
	})

	return checkpoint
}

// CreateFinishLine creates the finish line entity with its trigger zone.
func CreateFinishLine(w donburi.World, world *physics.World, f course.Finish) *donburi.Entry {
	finish := archetypes.FinishLine.Spawn(w)

	obj := world.AddZone(f.X, f.Z, f.Width, f.Depth, finish, tags.ResolvFinishLine)
	components.Zone.SetValue(finish, components.ZoneData{Object: obj})
	components.FinishLine.SetValue(finish, components.FinishLineData{
		Direction: physics.FacingVector(f.Yaw),
	})

	return finish
}

// CreateHazard creates a hazard entity with its zone.
func CreateHazard(w donburi.World, world *physics.World, hz course.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)

	obj := world.AddZone(hz.X, hz.Z, hz.Width, hz.Depth, hazard, tags.ResolvHazard)
	components.Zone.SetValue(hazard, components.ZoneData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{
		Name:    hz.Name,
		Surface: hz.Surface,
	})

	return hazard
}

// CreateProgress creates the lap tracker starting at now.
func CreateProgress(w donburi.World, maxLaps int, required []int, minFinishDot, now float64) *donburi.Entry {
	entry := archetypes.Course.Spawn(w)
	components.Progress.SetValue(entry, components.NewProgressData(maxLaps, required, minFinishDot, now))
	return entry
}

// poseOnGround places a pose height above the ground at (x, z). Without
// ground it uses height above zero and reports false.
func poseOnGround(world *physics.World, x, z, yaw, height float64) (physics.Pose, bool) {
	y, ok := world.SurfaceHeight(x, z)
	return physics.YawPose(mgl64.Vec3{x, y + height, z}, yaw), ok
}
