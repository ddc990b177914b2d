package components

import (
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/trick"
	"github.com/yohamta/donburi"
)

// Animator plays trick animations. Optional.
type Animator interface {
	PlayTrick(def trick.Definition)
	StopTrick()
}

// ScoreSink receives scoring notifications. Optional.
type ScoreSink interface {
	TrickPerformed(name string)
	ComboLanded()
	ComboBailed()
}

// CheckpointProvider supplies the pose to respawn at. Optional; the skater
// falls back to its spawn pose.
type CheckpointProvider interface {
	LastCheckpointPose() (physics.Pose, bool)
}

// CapabilitiesData holds the optional ports of a skater. Any of them may be
// nil.
type CapabilitiesData struct {
	Animator    Animator
	Score       ScoreSink
	Checkpoints CheckpointProvider
}

var Capabilities = donburi.NewComponentType[CapabilitiesData]()

func (c *CapabilitiesData) PlayTrick(def trick.Definition) {
	if c.Animator != nil {
		c.Animator.PlayTrick(def)
	}
}

func (c *CapabilitiesData) StopTrick() {
	if c.Animator != nil {
		c.Animator.StopTrick()
	}
}

func (c *CapabilitiesData) TrickPerformed(name string) {
	if c.Score != nil {
		c.Score.TrickPerformed(name)
	}
}

func (c *CapabilitiesData) ComboLanded() {
	if c.Score != nil {
		c.Score.ComboLanded()
	}
}

func (c *CapabilitiesData) ComboBailed() {
	if c.Score != nil {
		c.Score.ComboBailed()
	}
}

// RespawnPose returns the last checkpoint pose, or fallback and false when
// there is none.
func (c *CapabilitiesData) RespawnPose(fallback physics.Pose) (physics.Pose, bool) {
	if c.Checkpoints == nil {
		return fallback, false
	}
	if p, ok := c.Checkpoints.LastCheckpointPose(); ok {
		return p, true
	}
	return fallback, false
}
