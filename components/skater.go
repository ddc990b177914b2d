package components

import (
	"math"

	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// LandingState is the landing resolver's view of the skater.
type LandingState int

const (
	Airborne LandingState = iota
	Grounded
	Recovering
)

func (s LandingState) String() string {
	switch s {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	case Recovering:
		return "recovering"
	}
	return "unknown"
}

// SkaterData is the per-entity controller state. The pose itself lives on
// the body.
type SkaterData struct {
	Tuning config.SkaterConfig
	Ground config.GroundConfig

	Yaw           float64
	Grounded      bool // sampled once at the start of the tick
	WasGrounded   bool
	SurfaceNormal mgl64.Vec3
	Landing       LandingState

	JumpCharging bool
	JumpCharge   float64
	LastJumpAt   float64

	PendingLandingBoost  bool
	AllowOverspeedUntil  float64
	SuppressAirTurnUntil float64

	// Velocity sampled on the last airborne tick, handed to the ragdoll.
	LastAirVelocity mgl64.Vec3

	SpawnPose physics.Pose
}

var Skater = donburi.NewComponentType[SkaterData]()

// NewSkaterData returns a fresh controller state facing the spawn pose.
func NewSkaterData(tuning config.SkaterConfig, ground config.GroundConfig, spawn physics.Pose) SkaterData {
	s := SkaterData{
		Tuning:    tuning,
		Ground:    ground,
		SpawnPose: spawn,
	}
	s.Reset(spawn.Yaw())
	return s
}

// Reset clears every transient field. Tuning and the spawn pose are kept.
func (s *SkaterData) Reset(yaw float64) {
	*s = SkaterData{
		Tuning:     s.Tuning,
		Ground:     s.Ground,
		SpawnPose:  s.SpawnPose,
		Yaw:        yaw,
		Landing:    Airborne,
		LastJumpAt: math.Inf(-1),
	}
}

// ExtendOverspeed moves the overspeed window end forward, never back.
func (s *SkaterData) ExtendOverspeed(until float64) {
	if until > s.AllowOverspeedUntil {
		s.AllowOverspeedUntil = until
	}
}

// ExtendAirTurnSuppress moves the air turn suppression end forward, never back.
func (s *SkaterData) ExtendAirTurnSuppress(until float64) {
	if until > s.SuppressAirTurnUntil {
		s.SuppressAirTurnUntil = until
	}
}

// SkaterInputData holds the staged analog input read by locomotion.
type SkaterInputData struct {
	Steer    mgl64.Vec2
	Throttle float64
}

var SkaterInput = donburi.NewComponentType[SkaterInputData]()
