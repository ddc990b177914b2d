// Package autopilot drives a skater around a course without a player. It is
// used by the headless runner and for soak testing the controller.
package autopilot

import (
	"math"
	"math/rand"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/course"
	"github.com/automoto/skatedog/sim"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
)

// Settings tune the driving behavior. Times are in ticks.
type Settings struct {
	ReachRadius   float64 // distance at which a waypoint counts as reached
	FullThrottle  float64 // heading error (degrees) below which it drives flat out
	SteerGain     float64 // degrees of heading error for full steer
	JumpInterval  int     // ticks between jump attempts
	JumpAlignment float64 // max heading error (degrees) to start a jump
	MinCharge     int
	MaxCharge     int
	Tricks        bool
}

func DefaultSettings() Settings {
	return Settings{
		ReachRadius:   2.5,
		FullThrottle:  30,
		SteerGain:     30,
		JumpInterval:  180,
		JumpAlignment: 15,
		MinCharge:     6,
		MaxCharge:     30,
		Tricks:        true,
	}
}

// Combos the autopilot tries while airborne.
var combos = [][]trick.Direction{
	{trick.Left},
	{trick.Up},
	{trick.Left, trick.Right},
	{trick.Down, trick.Left},
	{trick.Down, trick.Right, trick.Up},
}

// takeoffTimeout is how long a released jump may stay grounded before the
// autopilot gives up on it.
const takeoffTimeout = 30

type phase int

const (
	phaseDrive phase = iota
	phaseCharge
	phaseAirborne
)

// Autopilot steers toward course waypoints and throws in jumps and tricks.
type Autopilot struct {
	settings  Settings
	rng       *rand.Rand
	waypoints []mgl64.Vec2
	next      int

	phase       phase
	jumpTimer   int
	chargeTimer int
	combo       []trick.Direction
	comboStep   int
	tricked     bool
	leftGround  bool
	waitTicks   int
}

// New plans a lap over c: every checkpoint in ID order, then the finish. A
// fixed seed gives the same run every time.
func New(c *course.Course, settings Settings, seed int64) *Autopilot {
	return &Autopilot{
		settings:  settings,
		rng:       rand.New(rand.NewSource(seed)),
		waypoints: Waypoints(c),
		jumpTimer: settings.JumpInterval,
	}
}

// Waypoints returns the X/Z targets for one lap of c.
func Waypoints(c *course.Course) []mgl64.Vec2 {
	if c == nil {
		return nil
	}
	var points []mgl64.Vec2
	for _, cp := range c.Checkpoints {
		x, z := cp.Center()
		points = append(points, mgl64.Vec2{x, z})
	}
	if c.Finish != nil {
		x, z := c.Finish.Center()
		points = append(points, mgl64.Vec2{x, z})
	}
	return points
}

// Target returns the waypoint being driven to.
func (a *Autopilot) Target() (mgl64.Vec2, bool) {
	if len(a.waypoints) == 0 {
		return mgl64.Vec2{}, false
	}
	return a.waypoints[a.next], true
}

// Drive feeds one tick of input into s. Call it before every tick.
func (a *Autopilot) Drive(s *sim.Simulation) {
	snap := s.Snapshot()
	if snap.Recovery != components.RecoveryActive {
		a.reset(s)
		return
	}

	steer, throttle, aligned := a.steer(snap)

	switch a.phase {
	case phaseDrive:
		s.Move(mgl64.Vec2{steer, 0})
		s.Throttle(throttle)
		if a.jumpTimer > 0 {
			a.jumpTimer--
		}
		if a.jumpTimer == 0 && aligned && snap.Grounded {
			a.phase = phaseCharge
			a.chargeTimer = a.settings.MinCharge + a.rng.Intn(a.settings.MaxCharge-a.settings.MinCharge+1)
			s.Jump(true)
		}

	case phaseCharge:
		s.Move(mgl64.Vec2{steer, 0})
		s.Throttle(throttle)
		a.chargeTimer--
		if a.chargeTimer <= 0 {
			s.Jump(false)
			a.phase = phaseAirborne
			a.combo = combos[a.rng.Intn(len(combos))]
			a.comboStep = 0
			a.tricked = false
			a.leftGround = false
			a.waitTicks = 0
		}

	case phaseAirborne:
		s.Throttle(throttle)
		if !snap.Grounded {
			a.leftGround = true
			a.performCombo(s)
			return
		}
		a.waitTicks++
		if a.leftGround || a.waitTicks > takeoffTimeout {
			a.land()
		}
	}
}

// performCombo taps one direction per tick, then hits the trick button.
func (a *Autopilot) performCombo(s *sim.Simulation) {
	if !a.settings.Tricks || a.tricked {
		s.Move(mgl64.Vec2{})
		return
	}
	step := a.comboStep
	a.comboStep++

	// Even steps push a direction, odd steps return to neutral
	if i := step / 2; i < len(a.combo) {
		if step%2 == 0 {
			s.Move(directionVector(a.combo[i]))
		} else {
			s.Move(mgl64.Vec2{})
		}
		return
	}
	if step == 2*len(a.combo) {
		s.Trick(true)
		return
	}
	s.Trick(false)
	a.tricked = true
}

func (a *Autopilot) land() {
	a.phase = phaseDrive
	a.jumpTimer = a.settings.JumpInterval
}

// reset releases everything while the skater is out of control.
func (a *Autopilot) reset(s *sim.Simulation) {
	if a.phase != phaseDrive {
		s.Jump(false)
		s.Trick(false)
	}
	s.Move(mgl64.Vec2{})
	s.Throttle(0)
	a.land()
}

// steer returns the stick X and throttle toward the current waypoint,
// advancing it once reached. aligned reports a small heading error.
func (a *Autopilot) steer(snap sim.Snapshot) (steer, throttle float64, aligned bool) {
	target, ok := a.Target()
	if !ok {
		return 0, 1, true
	}
	pos := mgl64.Vec2{snap.Position.X(), snap.Position.Z()}
	if target.Sub(pos).Len() < a.settings.ReachRadius {
		a.next = (a.next + 1) % len(a.waypoints)
		target = a.waypoints[a.next]
	}

	errDeg := HeadingError(pos, target, snap.Yaw)
	steer = mgl64.Clamp(errDeg/a.settings.SteerGain, -1, 1)

	switch abs := math.Abs(errDeg); {
	case abs < a.settings.FullThrottle:
		throttle = 1
	case abs < 2*a.settings.FullThrottle:
		throttle = 0.3
	}
	return steer, throttle, math.Abs(errDeg) < a.settings.JumpAlignment
}

// HeadingError returns the signed turn in degrees from yaw to face target.
// Positive means turn toward +X from +Z.
func HeadingError(pos, target mgl64.Vec2, yaw float64) float64 {
	d := target.Sub(pos)
	want := mgl64.RadToDeg(math.Atan2(d.X(), d.Y()))
	return math.Remainder(want-yaw, 360)
}

func directionVector(d trick.Direction) mgl64.Vec2 {
	switch d {
	case trick.Left:
		return mgl64.Vec2{-1, 0}
	case trick.Right:
		return mgl64.Vec2{1, 0}
	case trick.Up:
		return mgl64.Vec2{0, 1}
	default:
		return mgl64.Vec2{0, -1}
	}
}
