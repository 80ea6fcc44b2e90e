package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) hudText() string {
	var b strings.Builder
	bounds := g.sim.Bounds()
	fmt.Fprintf(&b, "Balls: %d  FPS: %.1f  Bounces: %d\n", g.sim.Len(), g.frames.fps(), g.sim.TotalBounces())
	fmt.Fprintf(&b, "Surface: %.0fx%.0f  Up: %s\n", bounds.X, bounds.Y,
		formatDuration(g.sim.Clock().Now().Sub(g.started)))

	sound := "off"
	if g.sound.enabled {
		sound = "on"
	}
	fmt.Fprintf(&b, "Space/click: +%d  M: sound %s  H: hide  Esc: quit", g.opts.BallInc, sound)
	if g.lastErr != nil {
		b.WriteString("\nError: " + g.lastErr.Error())
	}
	return b.String()
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.hudText(), 12, 12)
}
