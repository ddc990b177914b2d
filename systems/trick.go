package systems

import (
	"log"
	"math"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/tags"
	"github.com/automoto/skatedog/trick"
	"github.com/yohamta/donburi"
)

// UpdateTrickTimers releases trick locks whose unlock deadline has passed.
func UpdateTrickTimers(w donburi.World) {
	now := clockOf(w).Now

	tags.Skater.Each(w, func(e *donburi.Entry) {
		ts := components.TrickState.Get(e)
		if !ts.Unlock.Pending() {
			return
		}
		fired, stale := ts.Unlock.Poll(now, generationOf(e))
		if stale {
			log.Printf("Warning: ignoring stale trick unlock for entity %v", e.Entity())
			return
		}
		if fired {
			endTrick(w, e, ts)
		}
	})
}

// canTrick reports whether a trick may start: airborne, active and unlocked.
func canTrick(e *donburi.Entry) bool {
	ts := components.TrickState.Get(e)
	return isActive(e) && ts.Catalog != nil && !ts.Locked && !components.Skater.Get(e).Grounded
}

// tryComboTrick runs the longest catalog trick matching the end of the buffer.
func tryComboTrick(w donburi.World, e *donburi.Entry) bool {
	if !canTrick(e) {
		return false
	}
	ts := components.TrickState.Get(e)
	def, ok := ts.Catalog.BestSuffixMatch(ts.Buffer.Directions())
	if !ok {
		return false
	}
	startTrick(w, e, def)
	return true
}

// trySingleTrick runs the one-direction trick bound to dir, ignoring the buffer.
func trySingleTrick(w donburi.World, e *donburi.Entry, dir trick.Direction) bool {
	if !canTrick(e) {
		return false
	}
	def, ok := components.TrickState.Get(e).Catalog.SingleDirection(dir)
	if !ok {
		return false
	}
	startTrick(w, e, def)
	return true
}

func startTrick(w donburi.World, e *donburi.Entry, def trick.Definition) {
	now := clockOf(w).Now
	skater := components.Skater.Get(e)
	ts := components.TrickState.Get(e)
	caps := components.Capabilities.Get(e)

	duration := math.Max(def.Duration, skater.Tuning.MinTrickDuration)
	if duration <= 0 {
		duration = trick.MinDuration
	}

	ts.Locked = true
	ts.Active = def
	ts.Unlock.Arm(now+duration, generationOf(e))
	skater.PendingLandingBoost = true

	caps.PlayTrick(def)
	caps.TrickPerformed(def.Name)

	components.TrickStarted.Publish(w, components.TrickStartedEvent{
		Entity:         e.Entity(),
		Name:           def.Name,
		Animation:      def.Animation,
		BoardAnimation: def.BoardAnimation,
		Duration:       duration,
	})
}

func endTrick(w donburi.World, e *donburi.Entry, ts *components.TrickStateData) {
	name := ts.Active.Name
	ts.Locked = false
	ts.Active = trick.Definition{}
	components.Capabilities.Get(e).StopTrick()

	components.TrickEnded.Publish(w, components.TrickEndedEvent{
		Entity: e.Entity(),
		Name:   name,
	})
}
