// Package physics is a small rigid-body layer for the skate simulation:
// bodies with force/impulse accumulation and a resolv-backed ground
// heightfield that answers downward ray casts and zone queries.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// Pose is a position and rotation snapshot.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// YawPose builds an upright pose facing yaw degrees around +Y.
func YawPose(pos mgl64.Vec3, yawDeg float64) Pose {
	return Pose{
		Position: pos,
		Rotation: mgl64.QuatRotate(mgl64.DegToRad(yawDeg), Up),
	}
}

// Yaw returns the heading of p in degrees, measured from +Z towards +X.
func (p Pose) Yaw() float64 {
	rot := p.Rotation
	if rot.Len() == 0 {
		return 0
	}
	fwd := rot.Normalize().Rotate(Forward)
	if math.Abs(fwd.X()) < 1e-12 && math.Abs(fwd.Z()) < 1e-12 {
		return 0
	}
	return mgl64.RadToDeg(math.Atan2(fwd.X(), fwd.Z()))
}

// FacingVector returns the horizontal unit vector for a yaw in degrees.
func FacingVector(yawDeg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(yawDeg)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

// Horizontal drops the Y component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// Offset returns a pose displaced by local, expressed in p's frame, with
// p's rotation.
func (p Pose) Offset(local mgl64.Vec3) Pose {
	rot := p.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	return Pose{
		Position: p.Position.Add(rot.Rotate(local)),
		Rotation: rot,
	}
}
