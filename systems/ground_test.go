package systems

import (
	"testing"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestIsGrounded(t *testing.T) {
	world := physics.NewWorld(16, 16, 4, 9.81)
	world.AddGround(&physics.GroundPiece{Width: 16, Depth: 16, SlopeX: 0.5})
	cfg := config.GroundConfig{RaycastDistance: 1.2, Layer: "ground"}

	ok, normal := IsGrounded(world, mgl64.Vec3{2, 2, 2}, cfg)
	assert.True(t, ok)
	assert.Greater(t, normal.Y(), 0.0)
	assert.Less(t, normal.X(), 0.0)

	ok, _ = IsGrounded(world, mgl64.Vec3{2, 3.5, 2}, cfg)
	assert.False(t, ok, "out of ray range")

	ok, _ = IsGrounded(world, mgl64.Vec3{2, 2, 2}, config.GroundConfig{RaycastDistance: 1.2, Layer: "rails"})
	assert.False(t, ok, "other layer")

	ok, _ = IsGrounded(nil, mgl64.Vec3{}, cfg)
	assert.False(t, ok)
}

func TestGroundSensorTracksEdges(t *testing.T) {
	s := newScene(t)

	UpdateGroundSensor(s.w)
	sk := s.skaterData()
	assert.True(t, sk.Grounded)
	assert.False(t, sk.WasGrounded)
	assert.Equal(t, components.Grounded, sk.Landing)
	assert.Equal(t, physics.Up, sk.SurfaceNormal)

	s.body.Teleport(physics.YawPose(mgl64.Vec3{32, 5, 32}, 0))
	s.body.SetVelocity(mgl64.Vec3{1, 2, 3})
	UpdateGroundSensor(s.w)
	assert.False(t, sk.Grounded)
	assert.True(t, sk.WasGrounded)
	assert.Equal(t, components.Airborne, sk.Landing)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, sk.LastAirVelocity)
}

func TestClockAdvances(t *testing.T) {
	s := newScene(t)
	s.ticks(3)

	clock := clockOf(s.w)
	assert.Equal(t, uint64(3), clock.Tick)
	assert.InDelta(t, 3*testDT, clock.Now, 1e-12)
}
