package config

// SkaterConfig contains all controller tuning for one skater.
// Times are in seconds, angles in degrees, distances in meters.
type SkaterConfig struct {
	// Movement
	Acceleration     float64 `yaml:"acceleration"`
	MaxSpeed         float64 `yaml:"max_speed"`
	Friction         float64 `yaml:"friction"` // per-tick horizontal velocity multiplier when coasting
	TurnSpeed        float64 `yaml:"turn_speed"`
	ThrottleDeadzone float64 `yaml:"throttle_deadzone"`
	SteerDeadzone    float64 `yaml:"steer_deadzone"`

	// Air control
	AirAccelerationMultiplier float64 `yaml:"air_acceleration_multiplier"`
	AirTurnSpeedMultiplier    float64 `yaml:"air_turn_speed_multiplier"`
	AirTurnSuppressDuration   float64 `yaml:"air_turn_suppress_duration"` // after a Left/Right trick tap

	// Jump
	JumpImpulseMin float64 `yaml:"jump_impulse_min"`
	JumpImpulseMax float64 `yaml:"jump_impulse_max"`
	JumpChargeMax  float64 `yaml:"jump_charge_max"` // hold time that yields JumpImpulseMax
	JumpCooldown   float64 `yaml:"jump_cooldown"`

	// Tricks
	TrickDirectionDeadzone float64 `yaml:"trick_direction_deadzone"`
	MaxBufferedDirections  int     `yaml:"max_buffered_directions"`
	MinTrickDuration       float64 `yaml:"min_trick_duration"`

	// Landing boost
	LandingBoostImpulse            float64 `yaml:"landing_boost_impulse"`
	LandingBoostMinHorizontalSpeed float64 `yaml:"landing_boost_min_horizontal_speed"`
	LandingBoostMaxSpeedMultiplier float64 `yaml:"landing_boost_max_speed_multiplier"`
	LandingBoostOverspeedDuration  float64 `yaml:"landing_boost_overspeed_duration"`

	// Body
	Mass          float64 `yaml:"mass"`
	ContactRadius float64 `yaml:"contact_radius"` // origin to board contact
}

// GroundConfig contains ground sensor settings.
type GroundConfig struct {
	RaycastDistance float64 `yaml:"raycast_distance"`
	Layer           string  `yaml:"layer"`
}

// RecoveryConfig contains ragdoll and respawn timing.
type RecoveryConfig struct {
	RespawnDelay    float64 `yaml:"respawn_delay"`
	FadeOutDuration float64 `yaml:"fade_out_duration"` // 0 = respawn as soon as the delay ends
	FadeInDuration  float64 `yaml:"fade_in_duration"`

	// Ragdoll part rest offsets relative to the controller origin
	RiderRestOffset [3]float64 `yaml:"rider_rest_offset"`
	BoardRestOffset [3]float64 `yaml:"board_rest_offset"`
	RiderMass       float64    `yaml:"rider_mass"`
	BoardMass       float64    `yaml:"board_mass"`
}

// PhysicsConfig contains global simulation settings.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"` // downward acceleration, positive
	TickRate    int     `yaml:"tick_rate"`
	StepUp      float64 `yaml:"step_up"` // max surface rise a body can climb in one step
	SpaceCell   int     `yaml:"space_cell"`
	RagdollDrag float64 `yaml:"ragdoll_drag"` // per-second velocity damping on ragdoll parts
}

// CourseConfig contains course tracking settings.
type CourseConfig struct {
	MaxLaps        int     `yaml:"max_laps"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	KillHeight     float64 `yaml:"kill_height"` // below this Y the skater bails with a hazard cause
	FinishMinDot   float64 `yaml:"finish_min_dot"`
	SpawnHeight    float64 `yaml:"spawn_height"` // added above the surface for spawn and checkpoint poses
}

// ScoringConfig contains trick scoring and leaderboard settings.
type ScoringConfig struct {
	TrickBaseScore    float64 `yaml:"trick_base_score"`
	LeaderboardSize   int     `yaml:"leaderboard_size"`
	LeaderboardAppKey string  `yaml:"leaderboard_app_key"`
}

// Global configuration instances
var Skater SkaterConfig
var Ground GroundConfig
var Recovery RecoveryConfig
var Physics PhysicsConfig
var Course CourseConfig
var Scoring ScoringConfig

func init() {
	Reset()
}

// Reset restores every configuration instance to its default values.
func Reset() {
	// Skater Config
	Skater = SkaterConfig{
		// Movement
		Acceleration:     20.0,
		MaxSpeed:         10.0,
		Friction:         0.95,
		TurnSpeed:        100.0,
		ThrottleDeadzone: 0.1,
		SteerDeadzone:    0.01,

		// Air control
		AirAccelerationMultiplier: 0.35,
		AirTurnSpeedMultiplier:    0.6,
		AirTurnSuppressDuration:   0.12,

		// Jump
		JumpImpulseMin: 3.5,
		JumpImpulseMax: 7.0,
		JumpChargeMax:  0.5,
		JumpCooldown:   0.1,

		// Tricks
		TrickDirectionDeadzone: 0.5,
		MaxBufferedDirections:  8,
		MinTrickDuration:       0.01,

		// Landing boost
		LandingBoostImpulse:            3.0,
		LandingBoostMinHorizontalSpeed: 0.25,
		LandingBoostMaxSpeedMultiplier: 1.5,
		LandingBoostOverspeedDuration:  0.75,

		// Body
		Mass:          1.0,
		ContactRadius: 1.0,
	}

	Ground = GroundConfig{
		RaycastDistance: 1.2,
		Layer:           "ground",
	}

	Recovery = RecoveryConfig{
		RespawnDelay:    2.0,
		FadeOutDuration: 0.5,
		FadeInDuration:  0.5,
		RiderRestOffset: [3]float64{0, 0.2, 0},
		BoardRestOffset: [3]float64{0, -0.9, 0},
		RiderMass:       1.0,
		BoardMass:       0.3,
	}

	Physics = PhysicsConfig{
		Gravity:     9.81,
		TickRate:    60,
		StepUp:      0.3,
		SpaceCell:   4,
		RagdollDrag: 0.5,
	}

	Course = CourseConfig{
		MaxLaps:        3,
		PixelsPerMeter: 16,
		KillHeight:     -20,
		FinishMinDot:   0.5,
		SpawnHeight:    1.0,
	}

	Scoring = ScoringConfig{
		TrickBaseScore:    100,
		LeaderboardSize:   10,
		LeaderboardAppKey: "skatedog",
	}
}
