package components

import (
	"math"

	"github.com/automoto/skatedog/physics"
	"github.com/yohamta/donburi"
)

// ProgressData tracks laps and checkpoints for the course.
type ProgressData struct {
	MaxLaps      int
	MinFinishDot float64

	Lap        int // 1-based lap being driven
	RaceStart  float64
	LapStart   float64
	LastLap    float64
	BestLap    float64 // +Inf until the first lap completes
	TotalTime  float64
	Finished   bool
	Required   []int        // checkpoint IDs a lap must include
	Triggered  map[int]bool // checkpoint IDs hit this lap
	Inside     map[donburi.Entity]bool
	Checkpoint physics.Pose
	HasPoint   bool
}

var Progress = donburi.NewComponentType[ProgressData]()

// NewProgressData returns progress for a race of maxLaps laps starting at now.
func NewProgressData(maxLaps int, required []int, minFinishDot, now float64) ProgressData {
	return ProgressData{
		MaxLaps:      maxLaps,
		MinFinishDot: minFinishDot,
		Lap:          1,
		RaceStart:    now,
		LapStart:     now,
		BestLap:      math.Inf(1),
		Required:     required,
		Triggered:    make(map[int]bool),
		Inside:       make(map[donburi.Entity]bool),
	}
}

// LastCheckpointPose implements CheckpointProvider.
func (p *ProgressData) LastCheckpointPose() (physics.Pose, bool) {
	if p == nil || !p.HasPoint {
		return physics.Pose{}, false
	}
	return p.Checkpoint, true
}

// RecordCheckpoint remembers pose as the respawn point and marks id for the lap.
func (p *ProgressData) RecordCheckpoint(id int, pose physics.Pose) {
	p.Triggered[id] = true
	p.Checkpoint = pose
	p.HasPoint = true
}

// LapComplete reports whether every required checkpoint was hit this lap.
func (p *ProgressData) LapComplete() bool {
	for _, id := range p.Required {
		if !p.Triggered[id] {
			return false
		}
	}
	return true
}

// StartLap resets per-lap state at now.
func (p *ProgressData) StartLap(now float64) {
	p.LapStart = now
	for id := range p.Triggered {
		delete(p.Triggered, id)
	}
}
