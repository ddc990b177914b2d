package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	t.Cleanup(Reset)

	doc := `
skater:
  max_speed: 12.5
  max_buffered_directions: 4
recovery:
  respawn_delay: 1
`
	require.NoError(t, Load(strings.NewReader(doc)))

	assert.Equal(t, 12.5, Skater.MaxSpeed)
	assert.Equal(t, 4, Skater.MaxBufferedDirections)
	assert.Equal(t, 1.0, Recovery.RespawnDelay)
	// untouched defaults survive
	assert.Equal(t, 20.0, Skater.Acceleration)
	assert.Equal(t, "ground", Ground.Layer)
}

func TestLoadEmptyDocumentKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Load(strings.NewReader("")))
	assert.Equal(t, 10.0, Skater.MaxSpeed)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Load(strings.NewReader("skater:\n  top_speed: 3\n"))
	require.Error(t, err)
	assert.Equal(t, 10.0, Skater.MaxSpeed)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"zero mass", "skater:\n  mass: 0\n"},
		{"inverted jump range", "skater:\n  jump_impulse_min: 9\n  jump_impulse_max: 2\n"},
		{"friction above one", "skater:\n  friction: 1.5\n"},
		{"empty ground layer", "ground:\n  layer: \"\"\n"},
		{"zero tick rate", "physics:\n  tick_rate: 0\n"},
		{"negative jump charge", "skater:\n  jump_charge_max: -0.5\n"},
		{"negative turn speed", "skater:\n  turn_speed: -100\n"},
		{"negative buffer size", "skater:\n  max_buffered_directions: -1\n"},
		{"zero buffer size", "skater:\n  max_buffered_directions: 0\n"},
		{"negative trick duration", "skater:\n  min_trick_duration: -0.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, 1.0, Skater.Mass)
		})
	}
}
