package systems

import (
	"testing"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferIsBounded(t *testing.T) {
	s := newScene(t)
	s.airborne()

	for i := 0; i < 10; i++ {
		s.tap(trick.Up)
		s.tap(trick.Down)
	}

	ts := s.trickState()
	assert.Equal(t, 8, ts.Buffer.Len())
	assert.Equal(t, trick.Down, ts.Buffer.Directions()[7])
}

func TestHeldDirectionIsDebounced(t *testing.T) {
	s := newScene(t)
	s.airborne()

	OnMove(s.w, s.skater, mgl64.Vec2{0, 1})
	OnMove(s.w, s.skater, mgl64.Vec2{0.1, 0.9})
	OnMove(s.w, s.skater, mgl64.Vec2{0, 1})
	assert.Equal(t, 1, s.trickState().Buffer.Len())

	OnMove(s.w, s.skater, mgl64.Vec2{-1, 0})
	assert.Equal(t, []trick.Direction{trick.Up, trick.Left}, s.trickState().Buffer.Directions())
}

func TestGroundedMovesAreNotBuffered(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)

	s.tap(trick.Left)
	s.tap(trick.Right)
	assert.Zero(t, s.trickState().Buffer.Len())
}

func TestLongestSuffixWins(t *testing.T) {
	catalog, err := trick.NewCatalog(
		trick.Definition{Name: "kick", Directions: []trick.Direction{trick.Down}, Duration: 0.3},
		trick.Definition{Name: "flip", Directions: []trick.Direction{trick.Left, trick.Down}, Duration: 0.5},
	)
	require.NoError(t, err)

	s := newScene(t, withCatalog(catalog))
	s.airborne()
	s.tap(trick.Left)
	s.tap(trick.Down)
	OnTrick(s.w, s.skater, true)

	ts := s.trickState()
	require.True(t, ts.Locked)
	assert.Equal(t, "flip", ts.Active.Name)
	assert.Equal(t, []string{"flip"}, s.anim.played)
	assert.Equal(t, []string{"flip"}, s.score.tricks)
	assert.True(t, s.skaterData().PendingLandingBoost)
}

func TestTrickLocksForItsDuration(t *testing.T) {
	s := newScene(t)
	started := collect(s.w, components.TrickStarted)
	ended := collect(s.w, components.TrickEnded)

	s.airborne()
	s.tap(trick.Left)
	s.tap(trick.Right)
	OnTrick(s.w, s.skater, true)

	ts := s.trickState()
	require.True(t, ts.Locked)
	assert.Equal(t, "180", ts.Active.Name)
	assert.InDelta(t, 0.6, ts.Unlock.At, 1e-9)

	UpdateEvents(s.w)
	require.Len(t, *started, 1)
	assert.Equal(t, "frontside_180", (*started)[0].Animation)
	assert.Equal(t, "board_180", (*started)[0].BoardAnimation)
	assert.InDelta(t, 0.6, (*started)[0].Duration, 1e-9)

	// A second trigger while locked does nothing.
	OnTrick(s.w, s.skater, false)
	s.tap(trick.Up)
	OnTrick(s.w, s.skater, true)
	assert.Equal(t, "180", ts.Active.Name)
	assert.Len(t, s.score.tricks, 1)

	s.advance(0.5)
	UpdateTrickTimers(s.w)
	assert.True(t, ts.Locked)

	s.advance(0.2)
	UpdateTrickTimers(s.w)
	assert.False(t, ts.Locked)
	assert.Equal(t, 1, s.anim.stopped)

	UpdateEvents(s.w)
	require.Len(t, *ended, 1)
	assert.Equal(t, "180", (*ended)[0].Name)
}

func TestTriggerOnlyFiresOnRisingEdge(t *testing.T) {
	s := newScene(t)
	s.airborne()

	OnTrick(s.w, s.skater, true)
	assert.False(t, s.trickState().Locked, "empty buffer")

	s.trickState().Buffer.Push(trick.Left)
	OnTrick(s.w, s.skater, true)
	assert.False(t, s.trickState().Locked, "still held")
}

func TestHeldTriggerRunsSingleDirectionTrick(t *testing.T) {
	s := newScene(t)
	s.airborne()

	OnTrick(s.w, s.skater, true)
	OnMove(s.w, s.skater, mgl64.Vec2{0, 1})

	ts := s.trickState()
	require.True(t, ts.Locked)
	assert.Equal(t, "Ollie North", ts.Active.Name)
}

func TestNoTricksOnTheGround(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	s.trickState().Buffer.Push(trick.Left)

	OnTrick(s.w, s.skater, true)
	assert.False(t, s.trickState().Locked)
	assert.Empty(t, s.score.tricks)
}

func TestNoTricksWithoutCatalog(t *testing.T) {
	s := newScene(t, withCatalog(nil))
	s.airborne()
	s.tap(trick.Left)

	OnTrick(s.w, s.skater, true)
	assert.False(t, s.trickState().Locked)
}

func TestStaleUnlockIsDropped(t *testing.T) {
	s := newScene(t)
	ended := collect(s.w, components.TrickEnded)
	s.airborne()
	s.tap(trick.Left)
	OnTrick(s.w, s.skater, true)
	require.True(t, s.trickState().Locked)

	s.recovery().Generation++
	s.advance(1)
	UpdateTrickTimers(s.w)
	UpdateEvents(s.w)

	assert.False(t, s.trickState().Unlock.Pending())
	assert.Empty(t, *ended)
	assert.Zero(t, s.anim.stopped)
}
