package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a tuning document fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Tuning groups every configuration instance for YAML overrides.
type Tuning struct {
	Skater   SkaterConfig   `yaml:"skater"`
	Ground   GroundConfig   `yaml:"ground"`
	Recovery RecoveryConfig `yaml:"recovery"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Course   CourseConfig   `yaml:"course"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// Current returns a copy of the active configuration.
func Current() Tuning {
	return Tuning{
		Skater:   Skater,
		Ground:   Ground,
		Recovery: Recovery,
		Physics:  Physics,
		Course:   Course,
		Scoring:  Scoring,
	}
}

// Load decodes a YAML tuning document on top of the active configuration.
// Keys that are absent keep their current value. Nothing is applied if the
// document is malformed or fails validation.
func Load(r io.Reader) error {
	t := Current()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	t.Apply()
	return nil
}

// LoadFile applies the tuning document at path.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Apply installs t as the active configuration.
func (t Tuning) Apply() {
	Skater = t.Skater
	Ground = t.Ground
	Recovery = t.Recovery
	Physics = t.Physics
	Course = t.Course
	Scoring = t.Scoring
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Skater.Mass <= 0:
		return fmt.Errorf("%w: skater.mass must be positive", ErrInvalidConfig)
	case t.Skater.JumpImpulseMax < t.Skater.JumpImpulseMin:
		return fmt.Errorf("%w: skater.jump_impulse_max below jump_impulse_min", ErrInvalidConfig)
	case t.Skater.Friction < 0 || t.Skater.Friction > 1:
		return fmt.Errorf("%w: skater.friction must be within [0, 1]", ErrInvalidConfig)
	case t.Skater.JumpChargeMax < 0:
		return fmt.Errorf("%w: skater.jump_charge_max is negative", ErrInvalidConfig)
	case t.Skater.TurnSpeed < 0:
		return fmt.Errorf("%w: skater.turn_speed is negative", ErrInvalidConfig)
	case t.Skater.MaxBufferedDirections <= 0:
		return fmt.Errorf("%w: skater.max_buffered_directions must be positive", ErrInvalidConfig)
	case t.Skater.MinTrickDuration < 0:
		return fmt.Errorf("%w: skater.min_trick_duration is negative", ErrInvalidConfig)
	case t.Ground.RaycastDistance <= 0:
		return fmt.Errorf("%w: ground.raycast_distance must be positive", ErrInvalidConfig)
	case t.Ground.Layer == "":
		return fmt.Errorf("%w: ground.layer is empty", ErrInvalidConfig)
	case t.Physics.TickRate <= 0:
		return fmt.Errorf("%w: physics.tick_rate must be positive", ErrInvalidConfig)
	case t.Physics.SpaceCell <= 0:
		return fmt.Errorf("%w: physics.space_cell must be positive", ErrInvalidConfig)
	case t.Recovery.RespawnDelay < 0:
		return fmt.Errorf("%w: recovery.respawn_delay is negative", ErrInvalidConfig)
	case t.Course.PixelsPerMeter <= 0:
		return fmt.Errorf("%w: course.pixels_per_meter must be positive", ErrInvalidConfig)
	}
	return nil
}
