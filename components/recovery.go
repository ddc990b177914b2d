package components

import (
	"github.com/automoto/skatedog/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type RecoveryState int

const (
	RecoveryActive RecoveryState = iota
	RecoveryRagdoll
	RecoveryRespawning
)

func (s RecoveryState) String() string {
	switch s {
	case RecoveryActive:
		return "active"
	case RecoveryRagdoll:
		return "ragdoll"
	case RecoveryRespawning:
		return "respawning"
	}
	return "unknown"
}

// BailCause says why a skater went to ragdoll.
type BailCause int

const (
	CauseGeneric BailCause = iota
	CauseHazard
)

func (c BailCause) String() string {
	if c == CauseHazard {
		return "hazard"
	}
	return "generic"
}

type RecoveryData struct {
	Config config.RecoveryConfig

	State RecoveryState
	Cause BailCause

	// Generation is bumped on every respawn. Deadlines armed in an older
	// generation are stale.
	Generation uint64
	Respawn    Deadline

	Fade      *gween.Tween
	FadeAlpha float64 // 0 = clear, 1 = fully faded out
}

var Recovery = donburi.NewComponentType[RecoveryData]()
