package systems

import (
	"testing"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampHorizontalSpeed(t *testing.T) {
	v := ClampHorizontalSpeed(mgl64.Vec3{15, 2, 0}, 10)
	assert.InDelta(t, 10, v.X(), 1e-9)
	assert.Equal(t, 2.0, v.Y())

	v = ClampHorizontalSpeed(mgl64.Vec3{3, -4, 4}, 10)
	assert.Equal(t, mgl64.Vec3{3, -4, 4}, v)

	v = ClampHorizontalSpeed(mgl64.Vec3{100, 0, 0}, 0)
	assert.Equal(t, 100.0, v.X(), "non-positive limit disables the clamp")
}

func TestLocomotionClampsToMaxSpeed(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	require.True(t, s.skaterData().Grounded)

	s.body.SetVelocity(mgl64.Vec3{0, 0, 15})
	OnThrottle(s.w, s.skater, 1)
	UpdateLocomotion(s.w)

	assert.InDelta(t, 10, physics.Horizontal(s.body.Velocity()).Len(), 1e-9)
}

func TestLocomotionOverspeedWindow(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	s.skaterData().ExtendOverspeed(s.now() + 1)
	OnThrottle(s.w, s.skater, 1)

	s.body.SetVelocity(mgl64.Vec3{0, 0, 14})
	UpdateLocomotion(s.w)
	assert.InDelta(t, 14, s.body.Velocity().Z(), 1e-9)

	s.body.SetVelocity(mgl64.Vec3{0, 0, 20})
	UpdateLocomotion(s.w)
	assert.InDelta(t, 15, s.body.Velocity().Z(), 1e-9)

	s.advance(1.5)
	UpdateLocomotion(s.w)
	assert.InDelta(t, 10, s.body.Velocity().Z(), 1e-9)
}

func TestSpeedCap(t *testing.T) {
	s := newScene(t)
	sk := s.skaterData()
	assert.Equal(t, 10.0, SpeedCap(sk, 0))

	sk.ExtendOverspeed(0.75)
	assert.Equal(t, 15.0, SpeedCap(sk, 0.5))
	assert.Equal(t, 10.0, SpeedCap(sk, 0.75))

	sk.Tuning.MaxSpeed = 0
	assert.Zero(t, SpeedCap(sk, 0))
}

func TestLocomotionCoastingFriction(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	s.body.SetVelocity(mgl64.Vec3{0, 0, 5})

	UpdateLocomotion(s.w)
	assert.InDelta(t, 4.75, s.body.Velocity().Z(), 1e-9)

	s.airborne()
	UpdateLocomotion(s.w)
	assert.InDelta(t, 4.75, s.body.Velocity().Z(), 1e-9, "no friction in the air")
}

func TestLocomotionTurning(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	components.SkaterInput.Get(s.skater).Steer = mgl64.Vec2{1, 0}

	UpdateLocomotion(s.w)
	assert.InDelta(t, 100*testDT, s.skaterData().Yaw, 1e-9)

	yaw := s.skaterData().Yaw
	assert.InDelta(t, yaw, physics.Pose{Rotation: s.body.Rotation()}.Yaw(), 1e-6)

	s.airborne()
	UpdateLocomotion(s.w)
	assert.InDelta(t, yaw+60*testDT, s.skaterData().Yaw, 1e-9)
}

func TestLocomotionSteerDeadzone(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	components.SkaterInput.Get(s.skater).Steer = mgl64.Vec2{0.001, 0}

	UpdateLocomotion(s.w)
	assert.Zero(t, s.skaterData().Yaw)
}

func TestAirTurnSuppressedAfterHorizontalTap(t *testing.T) {
	s := newScene(t)
	s.airborne()

	OnMove(s.w, s.skater, mgl64.Vec2{1, 0})
	require.Equal(t, []trick.Direction{trick.Right}, s.trickState().Buffer.Directions())

	UpdateLocomotion(s.w)
	assert.Zero(t, s.skaterData().Yaw)

	s.advance(0.2)
	UpdateLocomotion(s.w)
	assert.InDelta(t, 60*testDT, s.skaterData().Yaw, 1e-9)
}

func TestNormalizeYaw(t *testing.T) {
	assert.InDelta(t, -170, normalizeYaw(190), 1e-9)
	assert.InDelta(t, 170, normalizeYaw(-190), 1e-9)
	assert.InDelta(t, 45, normalizeYaw(405), 1e-9)
}

func TestOnThrottleClamps(t *testing.T) {
	s := newScene(t)
	OnThrottle(s.w, s.skater, 3)
	assert.Equal(t, 1.0, components.SkaterInput.Get(s.skater).Throttle)
	OnThrottle(s.w, s.skater, -3)
	assert.Equal(t, -1.0, components.SkaterInput.Get(s.skater).Throttle)
}
