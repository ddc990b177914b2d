package autopilot

import (
	"testing"

	"github.com/automoto/skatedog/assets"
	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/sim"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaypointsFollowCheckpointsThenFinish(t *testing.T) {
	config.Reset()
	c, err := assets.LoadCourse("loop")
	require.NoError(t, err)

	points := Waypoints(c)
	require.Len(t, points, 5)
	assert.Equal(t, mgl64.Vec2{10, 31}, points[0])
	assert.Equal(t, mgl64.Vec2{10, 16.5}, points[4])

	assert.Empty(t, Waypoints(nil))
}

func TestHeadingError(t *testing.T) {
	origin := mgl64.Vec2{0, 0}
	assert.InDelta(t, 0, HeadingError(origin, mgl64.Vec2{0, 10}, 0), 1e-9)
	assert.InDelta(t, 90, HeadingError(origin, mgl64.Vec2{10, 0}, 0), 1e-9)
	assert.InDelta(t, -90, HeadingError(origin, mgl64.Vec2{-10, 0}, 0), 1e-9)
	assert.InDelta(t, -20, HeadingError(origin, mgl64.Vec2{0, 10}, 20), 1e-9)
	assert.InDelta(t, 20, HeadingError(origin, mgl64.Vec2{0, -10}, 160), 1e-9)
}

func TestDriveHeadsForFirstWaypoint(t *testing.T) {
	config.Reset()
	c, err := assets.LoadCourse("loop")
	require.NoError(t, err)
	s, err := sim.New(sim.Options{Course: c})
	require.NoError(t, err)

	settings := DefaultSettings()
	settings.JumpInterval = 1 << 30
	a := New(c, settings, 1)

	start := s.Snapshot().Position
	for i := 0; i < 60; i++ {
		a.Drive(s)
		s.Tick()
	}

	snap := s.Snapshot()
	assert.Equal(t, components.RecoveryActive, snap.Recovery)
	assert.Greater(t, snap.Position.Z(), start.Z()+3, "spawn faces the first checkpoint")
	assert.InDelta(t, start.X(), snap.Position.X(), 0.5)
}

func TestDriveJumpsAndTricks(t *testing.T) {
	config.Reset()
	s, err := sim.New(sim.Options{})
	require.NoError(t, err)

	var tricks []string
	sim.Subscribe(s, components.TrickStarted, func(e components.TrickStartedEvent) {
		tricks = append(tricks, e.Name)
	})

	settings := DefaultSettings()
	settings.JumpInterval = 10
	settings.MinCharge = 30
	settings.MaxCharge = 30
	a := New(sim.FlatCourse(64), settings, 7)

	left := false
	for i := 0; i < 300 && len(tricks) == 0; i++ {
		a.Drive(s)
		s.Tick()
		if !s.Snapshot().Grounded {
			left = true
		}
	}

	assert.True(t, left, "jumped")
	assert.NotEmpty(t, tricks)
}
