package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/skatedog/fonts"
	"github.com/automoto/skatedog/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	chargeWidth   = 120
	chargeHeight  = 8
	messageFrames = 120
	maxMessages   = 5
)

var (
	hudColor     = color.RGBA{230, 230, 230, 255}
	messageColor = color.RGBA{255, 220, 120, 255}
)

func (g *Game) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	face := fonts.HUD.Get()

	lines := []string{
		fmt.Sprintf("speed %5.1f m/s%s", snap.Speed, overspeedMark(snap.Overspeed)),
		fmt.Sprintf("lap   %d/%d  %6.2fs", snap.Lap, snap.MaxLaps, snap.LapTime),
		fmt.Sprintf("best  %s", formatLap(snap.BestLap)),
		fmt.Sprintf("score %d  x%d", g.score.Score(), g.score.Multiplier()),
		fmt.Sprintf("state %s / %s", snap.Landing, snap.Recovery),
	}
	if snap.Finished {
		lines[1] = fmt.Sprintf("done  %.2fs", snap.TotalTime)
	}
	for i, l := range lines {
		text.Draw(screen, l, face, hudMargin, hudMargin+hudLineHeight*(i+1), hudColor)
	}

	y := hudMargin + hudLineHeight*len(lines) + 8
	if snap.JumpCharging {
		charge := float32(snap.JumpCharge / g.sim.Tuning().Skater.JumpChargeMax)
		vector.FillRect(screen, hudMargin, float32(y), chargeWidth, chargeHeight, color.RGBA{40, 40, 40, 255}, false)
		vector.FillRect(screen, hudMargin, float32(y), chargeWidth*charge, chargeHeight, color.RGBA{40, 220, 40, 255}, false)
	}

	small := fonts.HUDSmall.Get()
	if len(snap.Buffer) > 0 {
		dirs := make([]string, len(snap.Buffer))
		for i, d := range snap.Buffer {
			dirs[i] = d.String()
		}
		text.Draw(screen, strings.Join(dirs, " "), small, hudMargin, screenHeight-hudMargin-hudLineHeight, hudColor)
	}
	if g.animator.current != "" {
		text.Draw(screen, g.animator.current, small, hudMargin, screenHeight-hudMargin, messageColor)
	}

	banner := fonts.Banner.Get()
	for i, m := range g.messages.entries {
		text.Draw(screen, m.text, banner, screenWidth/2-120, 60+i*34, messageColor)
	}
}

func overspeedMark(on bool) string {
	if on {
		return " +"
	}
	return ""
}

func formatLap(t float64) string {
	if t <= 0 {
		return "--"
	}
	return fmt.Sprintf("%.2fs", t)
}

type message struct {
	text   string
	frames int
}

// messageLog keeps the last few event messages on screen for a while.
type messageLog struct {
	entries []message
}

func newMessageLog() *messageLog {
	return &messageLog{}
}

func (l *messageLog) add(s string) {
	l.entries = append(l.entries, message{text: s, frames: messageFrames})
	if len(l.entries) > maxMessages {
		l.entries = l.entries[len(l.entries)-maxMessages:]
	}
}

func (l *messageLog) update() {
	kept := l.entries[:0]
	for _, m := range l.entries {
		m.frames--
		if m.frames > 0 {
			kept = append(kept, m)
		}
	}
	l.entries = kept
}
