// Package course parses skate course layouts from Tiled TMX files. It is
// pure data: no donburi, no resolv, no ebiten. Everything is in meters on
// the X/Z plane, with map Y becoming world Z.
package course

// Rect is an axis aligned rectangle on the ground plane.
type Rect struct {
	X, Z         float64
	Width, Depth float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() (x, z float64) {
	return r.X + r.Width/2, r.Z + r.Depth/2
}

// Contains reports whether (x, z) lies inside r, edges included.
func (r Rect) Contains(x, z float64) bool {
	return x >= r.X && x <= r.X+r.Width && z >= r.Z && z <= r.Z+r.Depth
}

// Ground is a planar piece of track. Height is measured at the piece's
// min X/Z corner and slopes are height change per meter.
type Ground struct {
	Rect
	Height float64
	SlopeX float64
	SlopeZ float64
	Layer  string
}

type Checkpoint struct {
	Rect
	ID       int
	Yaw      float64 // respawn heading in degrees
	Required bool
}

// Finish is the start/finish line. Yaw is the heading a valid crossing
// moves along.
type Finish struct {
	Rect
	Yaw float64
}

// Hazard is a zone the skater bails in once its board is below Surface.
type Hazard struct {
	Rect
	Name    string
	Surface float64
}

type Spawn struct {
	X, Z float64
	Yaw  float64
}

// Course holds everything parsed from one TMX file.
type Course struct {
	Name        string
	Width       float64
	Depth       float64
	Ground      []Ground
	Checkpoints []Checkpoint
	Finish      *Finish
	Hazards     []Hazard
	Spawn       Spawn
}

// RequiredCheckpoints returns the IDs every lap must include, in file order.
func (c *Course) RequiredCheckpoints() []int {
	var ids []int
	for _, cp := range c.Checkpoints {
		if cp.Required {
			ids = append(ids, cp.ID)
		}
	}
	return ids
}
