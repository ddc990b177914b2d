package systems

import (
	"testing"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/systems/factory"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const testDT = 1.0 / 60

type testScene struct {
	w      donburi.World
	world  *physics.World
	skater *donburi.Entry
	body   *physics.Body
	parts  []components.RagdollPart
	spawn  physics.Pose
	score  *recordingScore
	anim   *recordingAnimator
}

type sceneOption func(*factory.SkaterOptions)

func withCatalog(c *trick.Catalog) sceneOption {
	return func(o *factory.SkaterOptions) { o.Catalog = c }
}

func withCheckpoints(p components.CheckpointProvider) sceneOption {
	return func(o *factory.SkaterOptions) { o.Checkpoints = p }
}

func withRecovery(fn func(*config.RecoveryConfig)) sceneOption {
	return func(o *factory.SkaterOptions) { fn(&o.Recovery) }
}

// newScene builds a 64x64 m flat world with a skater resting in the middle
// facing +Z.
func newScene(t *testing.T, opts ...sceneOption) *testScene {
	t.Helper()
	config.Reset()

	catalog, err := trick.DefaultCatalog()
	require.NoError(t, err)

	w := donburi.NewWorld()
	factory.CreateClock(w, testDT)
	we := factory.CreatePhysicsWorld(w, 64, 64, config.Physics, config.Course.KillHeight)
	world := components.PhysicsWorld.Get(we).World
	world.AddGround(&physics.GroundPiece{Width: 64, Depth: 64})

	spawn := physics.YawPose(mgl64.Vec3{32, config.Skater.ContactRadius, 32}, 0)
	body, parts := factory.CreateSkaterBodies(world, spawn, config.Skater, config.Recovery, config.Physics)

	s := &testScene{
		w:     w,
		world: world,
		body:  body,
		parts: parts,
		spawn: spawn,
		score: &recordingScore{},
		anim:  &recordingAnimator{},
	}

	so := factory.SkaterOptions{
		Body:     body,
		Ragdoll:  parts,
		Spawn:    spawn,
		Catalog:  catalog,
		Tuning:   config.Skater,
		Ground:   config.Ground,
		Recovery: config.Recovery,
		Animator: s.anim,
		Score:    s.score,
	}
	for _, opt := range opts {
		opt(&so)
	}

	s.skater, err = factory.CreateSkater(w, so)
	require.NoError(t, err)

	// Settle the spawn teleport so the first test step integrates normally.
	world.Step(testDT)
	return s
}

// tick runs the full system order once.
func (s *testScene) tick() {
	for _, system := range []func(donburi.World){
		UpdateClock,
		UpdateTrickTimers,
		UpdateGroundSensor,
		UpdateJumpCharge,
		UpdateLocomotion,
		UpdateLanding,
		UpdateHazards,
		UpdateRecovery,
		UpdatePhysics,
		UpdateCourseProgress,
		UpdateEvents,
	} {
		system(s.w)
	}
}

func (s *testScene) ticks(n int) {
	for i := 0; i < n; i++ {
		s.tick()
	}
}

// advance moves the clock without running any other system.
func (s *testScene) advance(seconds float64) {
	e, _ := components.Clock.First(s.w)
	components.Clock.Get(e).Now += seconds
}

func (s *testScene) now() float64 {
	return clockOf(s.w).Now
}

func (s *testScene) skaterData() *components.SkaterData {
	return components.Skater.Get(s.skater)
}

func (s *testScene) trickState() *components.TrickStateData {
	return components.TrickState.Get(s.skater)
}

func (s *testScene) recovery() *components.RecoveryData {
	return components.Recovery.Get(s.skater)
}

// airborne marks the skater as in the air without moving the body.
func (s *testScene) airborne() {
	sk := s.skaterData()
	sk.Grounded = false
	sk.WasGrounded = false
	sk.Landing = components.Airborne
}

// tap pushes dir through the stick and returns it to neutral.
func (s *testScene) tap(dir trick.Direction) {
	var v mgl64.Vec2
	switch dir {
	case trick.Left:
		v = mgl64.Vec2{-1, 0}
	case trick.Right:
		v = mgl64.Vec2{1, 0}
	case trick.Up:
		v = mgl64.Vec2{0, 1}
	case trick.Down:
		v = mgl64.Vec2{0, -1}
	}
	OnMove(s.w, s.skater, v)
	OnMove(s.w, s.skater, mgl64.Vec2{})
}

func collect[T any](w donburi.World, ev *events.EventType[T]) *[]T {
	var got []T
	ev.Subscribe(w, func(w donburi.World, e T) {
		got = append(got, e)
	})
	return &got
}

type recordingScore struct {
	tricks []string
	landed int
	bailed int
}

func (r *recordingScore) TrickPerformed(name string) { r.tricks = append(r.tricks, name) }
func (r *recordingScore) ComboLanded()               { r.landed++ }
func (r *recordingScore) ComboBailed()               { r.bailed++ }

type recordingAnimator struct {
	played  []string
	stopped int
}

func (r *recordingAnimator) PlayTrick(def trick.Definition) { r.played = append(r.played, def.Name) }
func (r *recordingAnimator) StopTrick()                     { r.stopped++ }

type fixedCheckpoint struct {
	pose physics.Pose
}

func (f fixedCheckpoint) LastCheckpointPose() (physics.Pose, bool) { return f.pose, true }
