package systems

import (
	"testing"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpImpulse(t *testing.T) {
	cfg := config.SkaterConfig{JumpImpulseMin: 3.5, JumpImpulseMax: 7, JumpChargeMax: 0.5}

	assert.InDelta(t, 3.5, JumpImpulse(cfg, 0), 1e-9)
	assert.InDelta(t, 5.25, JumpImpulse(cfg, 0.25), 1e-9)
	assert.InDelta(t, 7, JumpImpulse(cfg, 0.5), 1e-9)
	assert.InDelta(t, 7, JumpImpulse(cfg, 3), 1e-9)

	cfg.JumpChargeMax = 0
	assert.InDelta(t, 7, JumpImpulse(cfg, 0), 1e-9, "no charge time means full impulse")
}

func TestChargedJump(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)

	OnJump(s.w, s.skater, true)
	require.True(t, s.skaterData().JumpCharging)
	for i := 0; i < 30; i++ {
		UpdateJumpCharge(s.w)
	}
	assert.InDelta(t, 0.5, s.skaterData().JumpCharge, 1e-9)
	for i := 0; i < 30; i++ {
		UpdateJumpCharge(s.w)
	}
	assert.InDelta(t, 0.5, s.skaterData().JumpCharge, 1e-9, "charge is capped")

	OnJump(s.w, s.skater, false)
	assert.False(t, s.skaterData().JumpCharging)
	assert.Zero(t, s.skaterData().JumpCharge)
	assert.Equal(t, s.now(), s.skaterData().LastJumpAt)

	s.world.Step(testDT)
	assert.InDelta(t, 7-config.Physics.Gravity*testDT, s.body.Velocity().Y(), 1e-6)
}

func TestJumpCooldown(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)

	OnJump(s.w, s.skater, true)
	OnJump(s.w, s.skater, false)
	OnJump(s.w, s.skater, true)
	assert.False(t, s.skaterData().JumpCharging)

	s.advance(0.2)
	OnJump(s.w, s.skater, true)
	assert.True(t, s.skaterData().JumpCharging)
}

func TestJumpNeedsGround(t *testing.T) {
	s := newScene(t)
	s.airborne()

	OnJump(s.w, s.skater, true)
	assert.False(t, s.skaterData().JumpCharging)
}

func TestJumpReleasedInAirIsDropped(t *testing.T) {
	s := newScene(t)
	UpdateGroundSensor(s.w)
	OnJump(s.w, s.skater, true)
	UpdateJumpCharge(s.w)

	s.airborne()
	OnJump(s.w, s.skater, false)

	assert.False(t, s.skaterData().JumpCharging)
	s.world.Step(testDT)
	assert.LessOrEqual(t, s.body.Velocity().Y(), 0.0, "no jump impulse")
}

func TestJumpLeavesAndReturnsToGround(t *testing.T) {
	s := newScene(t)
	s.tick()
	require.True(t, s.skaterData().Grounded)

	OnJump(s.w, s.skater, true)
	s.ticks(10)
	OnJump(s.w, s.skater, false)
	s.ticks(10)

	assert.False(t, s.skaterData().Grounded)
	assert.Equal(t, components.Airborne, s.skaterData().Landing)

	s.ticks(150)
	assert.True(t, s.skaterData().Grounded)
	assert.Equal(t, components.Grounded, s.skaterData().Landing)
	assert.Equal(t, components.RecoveryActive, s.recovery().State)
	assert.InDelta(t, 1, s.body.Position().Y(), 1e-9)
}
