package systems

import (
	"log"
	"math"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateCourseProgress records checkpoints the skater enters and counts
// laps when it crosses the finish line the right way with every required
// checkpoint hit.
func UpdateCourseProgress(w donburi.World) {
	pe, ok := components.Progress.First(w)
	if !ok {
		return
	}
	progress := components.Progress.Get(pe)
	if progress.Finished {
		return
	}

	world := physicsWorldOf(w)
	se, ok := tags.Skater.First(w)
	if world == nil || !ok || !isActive(se) {
		return
	}

	now := clockOf(w).Now
	body := components.Body.Get(se)
	pos := body.Position()

	var inside []*donburi.Entry
	for _, tag := range []string{tags.ResolvCheckpoint, tags.ResolvFinishLine} {
		for _, o := range world.ZonesAt(pos.X(), pos.Z(), tag) {
			if entry, ok := o.Data.(*donburi.Entry); ok && entry != nil {
				inside = append(inside, entry)
			}
		}
	}

	var entered []*donburi.Entry
	for _, entry := range inside {
		if !progress.Inside[entry.Entity()] {
			entered = append(entered, entry)
		}
	}
	for k := range progress.Inside {
		delete(progress.Inside, k)
	}
	for _, entry := range inside {
		progress.Inside[entry.Entity()] = true
	}

	for _, entry := range entered {
		switch {
		case entry.HasComponent(components.Checkpoint):
			reachCheckpoint(w, progress, components.Checkpoint.Get(entry))
		case entry.HasComponent(components.FinishLine):
			crossFinish(w, progress, components.FinishLine.Get(entry), body.Velocity(), now)
		}
		if progress.Finished {
			return
		}
	}
}

func reachCheckpoint(w donburi.World, progress *components.ProgressData, cp *components.CheckpointData) {
	first := !progress.Triggered[cp.ID]
	progress.RecordCheckpoint(cp.ID, cp.Pose)
	if !first {
		return
	}
	components.CheckpointReached.Publish(w, components.CheckpointReachedEvent{
		ID:  cp.ID,
		Lap: progress.Lap,
	})
}

func crossFinish(w donburi.World, progress *components.ProgressData, finish *components.FinishLineData, vel mgl64.Vec3, now float64) {
	heading := physics.Horizontal(vel)
	if heading.Len() == 0 || heading.Normalize().Dot(finish.Direction) <= progress.MinFinishDot {
		log.Printf("Warning: finish line crossed the wrong way on lap %d, ignoring", progress.Lap)
		return
	}
	if !progress.LapComplete() {
		log.Printf("Warning: lap %d crossed the finish without every checkpoint, ignoring", progress.Lap)
		return
	}

	lapTime := now - progress.LapStart
	progress.LastLap = lapTime
	progress.BestLap = math.Min(progress.BestLap, lapTime)
	components.LapCompleted.Publish(w, components.LapCompletedEvent{
		Lap:     progress.Lap,
		Time:    lapTime,
		BestLap: progress.BestLap,
	})

	if progress.Lap >= progress.MaxLaps {
		progress.Finished = true
		progress.TotalTime = now - progress.RaceStart
		components.RaceFinished.Publish(w, components.RaceFinishedEvent{
			TotalTime: progress.TotalTime,
			BestLap:   progress.BestLap,
		})
		return
	}
	progress.Lap++
	progress.StartLap(now)
}

type courseCheckpoints struct {
	w donburi.World
}

// CourseCheckpoints returns a CheckpointProvider backed by the course
// progress in w. It reports nothing while w has no course.
func CourseCheckpoints(w donburi.World) components.CheckpointProvider {
	return courseCheckpoints{w: w}
}

func (c courseCheckpoints) LastCheckpointPose() (physics.Pose, bool) {
	e, ok := components.Progress.First(c.w)
	if !ok {
		return physics.Pose{}, false
	}
	return components.Progress.Get(e).LastCheckpointPose()
}
