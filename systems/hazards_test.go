package systems

import (
	"testing"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/course"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/systems/factory"
	"github.com/automoto/skatedog/trick"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallingBelowKillHeightBails(t *testing.T) {
	s := newScene(t)
	s.body.Teleport(physics.YawPose(mgl64.Vec3{32, -25, 32}, 0))

	UpdateHazards(s.w)

	rec := s.recovery()
	assert.Equal(t, components.RecoveryRagdoll, rec.State)
	assert.Equal(t, components.CauseHazard, rec.Cause)
}

func TestHazardZoneSurface(t *testing.T) {
	tests := []struct {
		name    string
		rect    course.Rect
		surface float64
		bails   bool
	}{
		{"board below surface", course.Rect{X: 30, Z: 30, Width: 4, Depth: 4}, 0.5, true},
		{"board above surface", course.Rect{X: 30, Z: 30, Width: 4, Depth: 4}, -0.5, false},
		{"outside zone", course.Rect{X: 0, Z: 0, Width: 4, Depth: 4}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene(t)
			factory.CreateHazard(s.w, s.world, course.Hazard{Rect: tt.rect, Name: "pond", Surface: tt.surface})

			UpdateHazards(s.w)

			if tt.bails {
				assert.Equal(t, components.RecoveryRagdoll, s.recovery().State)
			} else {
				assert.Equal(t, components.RecoveryActive, s.recovery().State)
			}
		})
	}
}

func TestHazardsIgnoreRagdolledSkater(t *testing.T) {
	s := newScene(t)
	ragdolls := collect(s.w, components.RagdollEntered)
	factory.CreateHazard(s.w, s.world, course.Hazard{Rect: course.Rect{X: 30, Z: 30, Width: 4, Depth: 4}, Surface: 5})

	UpdateHazards(s.w)
	UpdateHazards(s.w)
	UpdateEvents(s.w)

	assert.Len(t, *ragdolls, 1)
}

func TestHazardBailDropsCombo(t *testing.T) {
	s := newScene(t)
	s.doTrick(trick.Left)
	require.True(t, s.trickState().Locked)

	s.body.Teleport(physics.YawPose(mgl64.Vec3{32, -25, 32}, 0))
	UpdateHazards(s.w)

	assert.Equal(t, 1, s.score.bailed)
	assert.Zero(t, s.score.landed)
}
