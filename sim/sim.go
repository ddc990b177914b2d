// Package sim wires the skater systems into a fixed-tick simulation.
package sim

import (
	"fmt"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/course"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/systems"
	"github.com/automoto/skatedog/systems/factory"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// System is one step of the tick.
type System func(w donburi.World)

// Options configures a Simulation. Every field is optional.
type Options struct {
	Course   *course.Course // nil runs on flat ground
	Catalog  *trick.Catalog // nil uses the embedded catalog
	Tuning   *config.Tuning // nil uses config.Current()
	Animator components.Animator
	Score    components.ScoreSink
}

// Simulation owns the world, the ordered systems and the player skater.
type Simulation struct {
	world    donburi.World
	skater   *donburi.Entry
	progress *donburi.Entry
	physics  *physics.World
	systems  []System
	tuning   config.Tuning
	course   *course.Course
}

// New builds a simulation with one skater at the course spawn.
func New(opts Options) (*Simulation, error) {
	tuning := config.Current()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", factory.ErrConfiguration, err)
	}

	catalog := opts.Catalog
	if catalog == nil {
		c, err := trick.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("load default catalog: %w", err)
		}
		catalog = c
	}

	c := opts.Course
	if c == nil {
		c = FlatCourse(64)
	}

	w := donburi.NewWorld()
	factory.CreateClock(w, 1/float64(tuning.Physics.TickRate))
	we := factory.CreatePhysicsWorld(w, c.Width, c.Depth, tuning.Physics, tuning.Course.KillHeight)
	world := components.PhysicsWorld.Get(we).World

	progress, spawn, err := factory.CreateCourse(w, world, c, tuning.Course)
	if err != nil {
		return nil, err
	}

	body, ragdoll := factory.CreateSkaterBodies(world, spawn, tuning.Skater, tuning.Recovery, tuning.Physics)
	skater, err := factory.CreateSkater(w, factory.SkaterOptions{
		Body:        body,
		Ragdoll:     ragdoll,
		Spawn:       spawn,
		Catalog:     catalog,
		Tuning:      tuning.Skater,
		Ground:      tuning.Ground,
		Recovery:    tuning.Recovery,
		Animator:    opts.Animator,
		Score:       opts.Score,
		Checkpoints: systems.CourseCheckpoints(w),
	})
	if err != nil {
		return nil, err
	}

	return &Simulation{
		world:    w,
		skater:   skater,
		progress: progress,
		physics:  world,
		systems:  DefaultSystems(),
		tuning:   tuning,
		course:   c,
	}, nil
}

// DefaultSystems returns the tick order.
func DefaultSystems() []System {
	return []System{
		systems.UpdateClock,
		systems.UpdateTrickTimers,
		systems.UpdateGroundSensor,
		systems.UpdateJumpCharge,
		systems.UpdateLocomotion,
		systems.UpdateLanding,
		systems.UpdateHazards,
		systems.UpdateRecovery,
		systems.UpdatePhysics,
		systems.UpdateCourseProgress,
		systems.UpdateEvents,
	}
}

// FlatCourse is a size x size meter flat square with the spawn in the middle.
func FlatCourse(size float64) *course.Course {
	return &course.Course{
		Name:   "flat",
		Width:  size,
		Depth:  size,
		Ground: []course.Ground{{Rect: course.Rect{Width: size, Depth: size}}},
		Spawn:  course.Spawn{X: size / 2, Z: size / 2},
	}
}

// Step advances the simulation by one tick of dt seconds.
func (s *Simulation) Step(dt float64) {
	components.Clock.Get(s.clockEntry()).DT = dt
	for _, system := range s.systems {
		system(s.world)
	}
}

// Tick advances the simulation by one tick at the configured rate.
func (s *Simulation) Tick() {
	s.Step(s.TickDuration())
}

// TickDuration is the fixed tick length from the tuning.
func (s *Simulation) TickDuration() float64 {
	return 1 / float64(s.tuning.Physics.TickRate)
}

func (s *Simulation) clockEntry() *donburi.Entry {
	e, _ := components.Clock.First(s.world)
	return e
}

// Now returns the simulated time in seconds.
func (s *Simulation) Now() float64 {
	return components.Clock.Get(s.clockEntry()).Now
}

// World exposes the entity world for presentation code and tests.
func (s *Simulation) World() donburi.World { return s.world }

// Skater returns the player skater entry.
func (s *Simulation) Skater() *donburi.Entry { return s.skater }

// Physics returns the physics world.
func (s *Simulation) Physics() *physics.World { return s.physics }

// Course returns the course being driven.
func (s *Simulation) Course() *course.Course { return s.course }

// Tuning returns the configuration the simulation was built with.
func (s *Simulation) Tuning() config.Tuning { return s.tuning }

// Input. These may be called between ticks; they take effect on the next one.

func (s *Simulation) Move(v mgl64.Vec2) { systems.OnMove(s.world, s.skater, v) }

func (s *Simulation) Throttle(t float64) { systems.OnThrottle(s.world, s.skater, t) }

func (s *Simulation) Jump(pressed bool) { systems.OnJump(s.world, s.skater, pressed) }

func (s *Simulation) Trick(pressed bool) { systems.OnTrick(s.world, s.skater, pressed) }

// Respawn puts the skater back at its last checkpoint right away.
func (s *Simulation) Respawn() { systems.Respawn(s.world, s.skater) }

// Subscribe registers fn for every event of type ev. Events are delivered
// at the end of the tick that produced them.
func Subscribe[T any](s *Simulation, ev *events.EventType[T], fn func(T)) {
	ev.Subscribe(s.world, func(w donburi.World, e T) {
		fn(e)
	})
}
