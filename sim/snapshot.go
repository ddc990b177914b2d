package sim

import (
	"math"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
)

// PartSnapshot is the pose of one ragdoll part.
type PartSnapshot struct {
	Name     string
	Position mgl64.Vec3
	Active   bool
}

// Snapshot is a read-only copy of everything presentation code may show.
type Snapshot struct {
	Time float64
	Tick uint64

	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Speed    float64 // horizontal
	Yaw      float64
	Grounded bool
	Landing  components.LandingState
	Recovery components.RecoveryState
	Fade     float64

	JumpCharging bool
	JumpCharge   float64

	TrickLocked bool
	Trick       string
	Buffer      []trick.Direction
	Overspeed   bool

	Ragdoll []PartSnapshot

	Lap       int
	MaxLaps   int
	LapTime   float64
	LastLap   float64
	BestLap   float64 // 0 until a lap completes
	TotalTime float64
	Finished  bool
}

// Snapshot copies the current state. It never mutates the simulation.
func (s *Simulation) Snapshot() Snapshot {
	clock := components.Clock.Get(s.clockEntry())
	skater := components.Skater.Get(s.skater)
	body := components.Body.Get(s.skater)
	ts := components.TrickState.Get(s.skater)
	rec := components.Recovery.Get(s.skater)

	vel := body.Velocity()
	snap := Snapshot{
		Time:         clock.Now,
		Tick:         clock.Tick,
		Position:     body.Position(),
		Velocity:     vel,
		Speed:        math.Hypot(vel.X(), vel.Z()),
		Yaw:          skater.Yaw,
		Grounded:     skater.Grounded,
		Landing:      skater.Landing,
		Recovery:     rec.State,
		Fade:         rec.FadeAlpha,
		JumpCharging: skater.JumpCharging,
		JumpCharge:   skater.JumpCharge,
		TrickLocked:  ts.Locked,
		Buffer:       append([]trick.Direction(nil), ts.Buffer.Directions()...),
		Overspeed:    clock.Now < skater.AllowOverspeedUntil,
	}
	if ts.Locked {
		snap.Trick = ts.Active.Name
	}

	for _, part := range components.Ragdoll.Get(s.skater).Parts {
		snap.Ragdoll = append(snap.Ragdoll, PartSnapshot{
			Name:     part.Name,
			Position: part.Body.Position(),
			Active:   part.Body.Simulated(),
		})
	}

	if s.progress != nil && s.progress.Valid() {
		p := components.Progress.Get(s.progress)
		snap.Lap = p.Lap
		snap.MaxLaps = p.MaxLaps
		snap.LastLap = p.LastLap
		snap.Finished = p.Finished
		if !math.IsInf(p.BestLap, 1) {
			snap.BestLap = p.BestLap
		}
		if p.Finished {
			snap.TotalTime = p.TotalTime
		} else {
			snap.LapTime = clock.Now - p.LapStart
			snap.TotalTime = clock.Now - p.RaceStart
		}
	}

	return snap
}
