package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// SolidTag marks every ground piece bodies collide with, whatever its layer.
const SolidTag = "solid"

// SpaceScale is the number of resolv units per meter. resolv sizes cells in
// whole units, so the space is laid out in pixel-like units rather than meters.
const SpaceScale = 32.0

// GroundPiece is a planar patch over a rectangle of the X/Z plane.
// Height at (x, z) is Base + SlopeX*(x-X) + SlopeZ*(z-Z).
type GroundPiece struct {
	X, Z         float64
	Width, Depth float64
	Base         float64
	SlopeX       float64
	SlopeZ       float64
	Layer        string
	object       *resolv.Object
}

// HeightAt returns the surface height of the piece's plane at (x, z).
func (g *GroundPiece) HeightAt(x, z float64) float64 {
	return g.Base + g.SlopeX*(x-g.X) + g.SlopeZ*(z-g.Z)
}

// Normal returns the piece's unit surface normal.
func (g *GroundPiece) Normal() mgl64.Vec3 {
	return mgl64.Vec3{-g.SlopeX, 1, -g.SlopeZ}.Normalize()
}

// Object returns the resolv object backing the piece once it is added.
func (g *GroundPiece) Object() *resolv.Object { return g.object }

func (g *GroundPiece) contains(x, z float64) bool {
	return x >= g.X && x <= g.X+g.Width && z >= g.Z && z <= g.Z+g.Depth
}

// Hit describes a ray cast result.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Piece    *GroundPiece
}

// World owns the bodies and the ground space. resolv works in 2D, so the
// space is laid over the X/Z plane: resolv X is world X, resolv Y is world Z,
// both multiplied by SpaceScale.
type World struct {
	Gravity mgl64.Vec3
	StepUp  float64

	space  *resolv.Space
	bodies []*Body
}

// NewWorld creates a world covering [0,width] x [0,depth] in X/Z with
// broadphase cells of cell meters.
func NewWorld(width, depth float64, cell int, gravity float64) *World {
	if cell <= 0 {
		cell = 4
	}
	cellUnits := int(float64(cell) * SpaceScale)
	space := resolv.NewSpace(
		int(math.Ceil(width*SpaceScale))+cellUnits,
		int(math.Ceil(depth*SpaceScale))+cellUnits,
		cellUnits, cellUnits,
	)

	return &World{
		Gravity: mgl64.Vec3{0, -gravity, 0},
		space:   space,
	}
}

// Space exposes the underlying resolv space.
func (w *World) Space() *resolv.Space { return w.space }

// AddGround registers a ground piece. Layer defaults to "ground".
func (w *World) AddGround(g *GroundPiece) *GroundPiece {
	if g.Layer == "" {
		g.Layer = "ground"
	}
	obj := w.addObject(g.X, g.Z, g.Width, g.Depth, g, SolidTag, g.Layer)
	g.object = obj
	return g
}

// AddZone registers a tagged trigger rectangle on the X/Z plane. data is
// returned as-is by ZonesAt.
func (w *World) AddZone(x, z, width, depth float64, data interface{}, tags ...string) *resolv.Object {
	return w.addObject(x, z, width, depth, data, tags...)
}

// addObject puts a rectangle given in meters into the space. resolv only
// registers cells up to X+W-1, so the object carries one extra unit to reach
// the cell holding its far edge. Bounds strips it again.
func (w *World) addObject(x, z, width, depth float64, data interface{}, tags ...string) *resolv.Object {
	ws, ds := width*SpaceScale, depth*SpaceScale
	obj := resolv.NewObject(x*SpaceScale, z*SpaceScale, ws+1, ds+1, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, ws, ds))
	obj.Data = data
	w.space.Add(obj)
	return obj
}

// Bounds returns the rectangle of an object added to w, in meters.
func (w *World) Bounds(o *resolv.Object) (x, z, width, depth float64) {
	return o.X / SpaceScale, o.Y / SpaceScale, (o.W - 1) / SpaceScale, (o.H - 1) / SpaceScale
}

// AddBody registers b for integration.
func (w *World) AddBody(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody stops integrating b.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Step integrates every registered body by dt.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.integrate(dt, w.Gravity, w, w.StepUp)
	}
}

// RaycastDown casts a ray of length maxDistance straight down from origin
// against pieces on layer and returns the nearest hit.
func (w *World) RaycastDown(origin mgl64.Vec3, maxDistance float64, layer string) (Hit, bool) {
	hit, ok := w.surfaceAt(origin.X(), origin.Z(), origin.Y(), layer)
	if !ok {
		return Hit{}, false
	}
	hit.Distance = origin.Y() - hit.Point.Y()
	if hit.Distance > maxDistance {
		return Hit{}, false
	}
	return hit, true
}

// SurfaceHeight returns the height of the highest ground at (x, z).
func (w *World) SurfaceHeight(x, z float64) (float64, bool) {
	hit, ok := w.surfaceAt(x, z, math.Inf(1), "")
	if !ok {
		return 0, false
	}
	return hit.Point.Y(), true
}

// ZonesAt returns the objects tagged tag whose rectangle contains (x, z).
func (w *World) ZonesAt(x, z float64, tag string) []*resolv.Object {
	var found []*resolv.Object
	for _, o := range w.candidates(x, z, tag) {
		ox, oz, ow, od := w.Bounds(o)
		if x >= ox && x <= ox+ow && z >= oz && z <= oz+od {
			found = append(found, o)
		}
	}
	return found
}

// surfaceAt finds the highest surface at (x, z) that is not above maxY.
func (w *World) surfaceAt(x, z, maxY float64, layer string) (Hit, bool) {
	if layer == "" {
		layer = SolidTag
	}

	var best Hit
	found := false
	for _, o := range w.candidates(x, z, layer) {
		g, ok := o.Data.(*GroundPiece)
		if !ok || !g.contains(x, z) {
			continue
		}
		h := g.HeightAt(x, z)
		if h > maxY {
			continue
		}
		if !found || h > best.Point.Y() {
			best = Hit{
				Point:  mgl64.Vec3{x, h, z},
				Normal: g.Normal(),
				Piece:  g,
			}
			found = true
		}
	}
	return best, found
}

// candidates returns the objects tagged tag that share the cell at (x, z).
func (w *World) candidates(x, z float64, tag string) []*resolv.Object {
	cell := w.space.Cell(w.space.WorldToSpace(x*SpaceScale, z*SpaceScale))
	if cell == nil {
		return nil
	}
	var found []*resolv.Object
	for _, o := range cell.Objects {
		if o.HasTags(tag) {
			found = append(found, o)
		}
	}
	return found
}
