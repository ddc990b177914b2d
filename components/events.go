package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Events are queued during the tick and delivered when the tick ends.

type TrickStartedEvent struct {
	Entity         donburi.Entity
	Name           string
	Animation      string
	BoardAnimation string
	Duration       float64
}

type TrickEndedEvent struct {
	Entity donburi.Entity
	Name   string
}

type LandingOutcome int

const (
	LandingBoost LandingOutcome = iota
	LandingFail
)

func (o LandingOutcome) String() string {
	if o == LandingFail {
		return "fail"
	}
	return "boost"
}

type LandingResultEvent struct {
	Entity  donburi.Entity
	Outcome LandingOutcome
}

type RagdollEnteredEvent struct {
	Entity donburi.Entity
	Cause  BailCause
}

type RespawnCompletedEvent struct {
	Entity       donburi.Entity
	AtCheckpoint bool
}

type CheckpointReachedEvent struct {
	ID  int
	Lap int
}

type LapCompletedEvent struct {
	Lap     int
	Time    float64
	BestLap float64
}

type RaceFinishedEvent struct {
	TotalTime float64
	BestLap   float64
}

var (
	TrickStarted      = events.NewEventType[TrickStartedEvent]()
	TrickEnded        = events.NewEventType[TrickEndedEvent]()
	LandingResult     = events.NewEventType[LandingResultEvent]()
	RagdollEntered    = events.NewEventType[RagdollEnteredEvent]()
	RespawnCompleted  = events.NewEventType[RespawnCompletedEvent]()
	CheckpointReached = events.NewEventType[CheckpointReachedEvent]()
	LapCompleted      = events.NewEventType[LapCompletedEvent]()
	RaceFinished      = events.NewEventType[RaceFinishedEvent]()
)
