package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ForceMode selects how AddForce changes a body's velocity.
type ForceMode int

const (
	ForceModeForce          ForceMode = iota // continuous, mass dependent
	ForceModeAcceleration                    // continuous, ignores mass
	ForceModeImpulse                         // instantaneous, mass dependent
	ForceModeVelocityChange                  // instantaneous, ignores mass
)

// RigidBody is what the skater controller needs from a simulator.
type RigidBody interface {
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	AddForce(v mgl64.Vec3, mode ForceMode)
	// Teleport moves the body and discards anything accumulated so far. The
	// next step does not move it; velocity changes added after the teleport
	// still apply.
	Teleport(p Pose)
	// SetSimulated toggles collision and dynamics together. A body that is
	// not simulated is kinematic: it keeps its pose until teleported.
	SetSimulated(enabled bool)
	Simulated() bool
	SetUseGravity(enabled bool)
}

// Body is the reference RigidBody integrated by World.
type Body struct {
	Name   string
	Mass   float64
	Radius float64 // distance from the origin down to the contact point
	Drag   float64 // per-second linear damping

	pos mgl64.Vec3
	rot mgl64.Quat
	vel mgl64.Vec3

	accel      mgl64.Vec3 // accumulated continuous acceleration
	deltaV     mgl64.Vec3 // accumulated instantaneous velocity change
	gravity    bool
	simulated  bool
	teleported bool
	onGround   bool
}

var _ RigidBody = (*Body)(nil)

// NewBody creates a simulated body with gravity at pose p.
func NewBody(name string, mass, radius float64, p Pose) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Name:      name,
		Mass:      mass,
		Radius:    radius,
		pos:       p.Position,
		rot:       normalizeRotation(p.Rotation),
		gravity:   true,
		simulated: true,
	}
}

func (b *Body) Position() mgl64.Vec3 { return b.pos }
func (b *Body) Rotation() mgl64.Quat { return b.rot }
func (b *Body) Velocity() mgl64.Vec3 { return b.vel }
func (b *Body) Simulated() bool      { return b.simulated }

// OnGround reports whether the last step ended in ground contact.
func (b *Body) OnGround() bool { return b.onGround }

func (b *Body) SetVelocity(v mgl64.Vec3) { b.vel = v }

func (b *Body) SetUseGravity(enabled bool) { b.gravity = enabled }

func (b *Body) SetRotation(q mgl64.Quat) { b.rot = normalizeRotation(q) }

func (b *Body) AddForce(v mgl64.Vec3, mode ForceMode) {
	switch mode {
	case ForceModeForce:
		b.accel = b.accel.Add(v.Mul(1 / b.Mass))
	case ForceModeAcceleration:
		b.accel = b.accel.Add(v)
	case ForceModeImpulse:
		b.deltaV = b.deltaV.Add(v.Mul(1 / b.Mass))
	case ForceModeVelocityChange:
		b.deltaV = b.deltaV.Add(v)
	}
}

func (b *Body) Teleport(p Pose) {
	b.pos = p.Position
	b.rot = normalizeRotation(p.Rotation)
	b.clearAccumulators()
	b.onGround = false
	b.teleported = true
}

func (b *Body) SetSimulated(enabled bool) {
	b.simulated = enabled
	if !enabled {
		b.vel = mgl64.Vec3{}
		b.clearAccumulators()
		b.onGround = false
	}
}

func (b *Body) clearAccumulators() {
	b.accel = mgl64.Vec3{}
	b.deltaV = mgl64.Vec3{}
}

// integrate advances the body by dt. ground may be nil.
func (b *Body) integrate(dt float64, gravity mgl64.Vec3, ground *World, stepUp float64) {
	if !b.simulated {
		b.clearAccumulators()
		return
	}
	if b.teleported {
		b.teleported = false
		b.vel = b.vel.Add(b.deltaV)
		b.clearAccumulators()
		return
	}

	if b.gravity {
		b.accel = b.accel.Add(gravity)
	}
	b.vel = b.vel.Add(b.accel.Mul(dt)).Add(b.deltaV)
	b.clearAccumulators()

	if b.Drag > 0 {
		b.vel = b.vel.Mul(math.Max(0, 1-b.Drag*dt))
	}

	prev := b.pos
	b.pos = b.pos.Add(b.vel.Mul(dt))
	b.onGround = false

	if ground == nil {
		return
	}

	// Surfaces above the previous contact point plus stepUp are out of reach.
	reach := prev.Y() - b.Radius + stepUp
	hit, ok := ground.surfaceAt(b.pos.X(), b.pos.Z(), reach, "")
	if !ok {
		return
	}
	contact := b.pos.Y() - b.Radius
	if contact > hit.Point.Y() {
		return
	}

	b.pos[1] = hit.Point.Y() + b.Radius
	if vn := b.vel.Dot(hit.Normal); vn < 0 {
		b.vel = b.vel.Sub(hit.Normal.Mul(vn))
	}
	b.onGround = true
}

func normalizeRotation(q mgl64.Quat) mgl64.Quat {
	if q.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}
