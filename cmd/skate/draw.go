package main

import (
	"image/color"
	"math"

	"github.com/automoto/skatedog/components"
	"github.com/automoto/skatedog/physics"
	"github.com/automoto/skatedog/sim"
	"github.com/automoto/skatedog/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

const pixelsPerMeter = 12.0

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	hazardColor     = color.RGBA{30, 60, 160, 255}
	checkpointColor = color.RGBA{0, 220, 220, 255}
	finishColor     = color.RGBA{240, 240, 240, 255}
	groundedColor   = color.RGBA{60, 220, 90, 255}
	airborneColor   = color.RGBA{240, 210, 60, 255}
	ragdollColor    = color.RGBA{230, 60, 60, 255}
	partColor       = color.RGBA{255, 140, 140, 255}
)

// camera centers the view on a world X/Z point. Map Y is world Z, so the
// view matches the Tiled editor.
type camera struct {
	x, z float64
}

func (c camera) toScreen(x, z float64) (float32, float32) {
	return float32((x-c.x)*pixelsPerMeter + screenWidth/2), float32((z-c.z)*pixelsPerMeter + screenHeight/2)
}

func drawCourse(screen *ebiten.Image, s *sim.Simulation, snap sim.Snapshot) {
	screen.Fill(backgroundColor)
	cam := camera{x: snap.Position.X(), z: snap.Position.Z()}

	world := s.Physics()
	for _, obj := range world.Space().Objects() {
		ox, oz, ow, od := world.Bounds(obj)
		x, y := cam.toScreen(ox, oz)
		w := float32(ow * pixelsPerMeter)
		h := float32(od * pixelsPerMeter)

		// Cull objects outside the screen
		if x+w < 0 || y+h < 0 || x > screenWidth || y > screenHeight {
			continue
		}

		switch {
		case obj.HasTags(physics.SolidTag):
			vector.FillRect(screen, x, y, w, h, groundShade(obj), false)
		case obj.HasTags(tags.ResolvHazard):
			vector.FillRect(screen, x, y, w, h, hazardColor, false)
		case obj.HasTags(tags.ResolvFinishLine):
			vector.FillRect(screen, x, y, w, h, finishColor, false)
		case obj.HasTags(tags.ResolvCheckpoint):
			vector.StrokeRect(screen, x, y, w, h, 2, checkpointColor, false)
		}
	}
}

// groundShade is lighter for higher ground.
func groundShade(obj *resolv.Object) color.RGBA {
	base := 0.0
	if g, ok := obj.Data.(*physics.GroundPiece); ok {
		base = g.Base
	}
	v := uint8(math.Max(40, math.Min(160, 90+base*25)))
	return color.RGBA{v, v, v, 255}
}

func drawSkater(screen *ebiten.Image, snap sim.Snapshot) {
	cam := camera{x: snap.Position.X(), z: snap.Position.Z()}

	for _, part := range snap.Ragdoll {
		if !part.Active {
			continue
		}
		x, y := cam.toScreen(part.Position.X(), part.Position.Z())
		vector.DrawFilledCircle(screen, x, y, 4, partColor, true)
	}
	if snap.Recovery != components.RecoveryActive {
		return
	}

	c := airborneColor
	if snap.Grounded {
		c = groundedColor
	}
	if snap.TrickLocked {
		c = ragdollColor
	}

	x, y := cam.toScreen(snap.Position.X(), snap.Position.Z())
	// Grow with height so jumps read from above
	r := float32(6 + math.Max(0, math.Min(6, snap.Position.Y()*2)))
	vector.DrawFilledCircle(screen, x, y, r, c, true)

	facing := physics.FacingVector(snap.Yaw).Mul(1.5)
	fx, fy := cam.toScreen(snap.Position.X()+facing.X(), snap.Position.Z()+facing.Z())
	vector.StrokeLine(screen, x, y, fx, fy, 2, c, true)
}

func drawFade(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	a := uint8(math.Min(1, alpha) * 255)
	vector.FillRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{0, 0, 0, a}, false)
}
